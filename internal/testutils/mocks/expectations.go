// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-battle/internal/repositories/battles"
	battlesmock "github.com/KirkDiggler/rpg-battle/internal/repositories/battles/mock"
)

// ExpectSnapshotSave accepts one save and records the saved snapshot in stored
func ExpectSnapshotSave(mockRepo *battlesmock.MockRepository, stored **battles.Snapshot) *gomock.Call {
	return mockRepo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input battles.SaveInput) (*battles.SaveOutput, error) {
			if stored != nil {
				*stored = input.Snapshot
			}
			return &battles.SaveOutput{Snapshot: input.Snapshot}, nil
		})
}

// ExpectSnapshotSaveError fails the next save with err
func ExpectSnapshotSaveError(mockRepo *battlesmock.MockRepository, err error) *gomock.Call {
	return mockRepo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		Return(nil, err)
}

// ExpectSnapshotGet sets up a mock expectation for loading a snapshot by battle id
func ExpectSnapshotGet(
	mockRepo *battlesmock.MockRepository,
	battleID string, snapshot *battles.Snapshot, err error,
) *gomock.Call {
	if err != nil {
		return mockRepo.EXPECT().
			Get(gomock.Any(), battles.GetInput{ID: battleID}).
			Return(nil, err)
	}
	return mockRepo.EXPECT().
		Get(gomock.Any(), battles.GetInput{ID: battleID}).
		Return(&battles.GetOutput{Snapshot: snapshot}, nil)
}

// ExpectSnapshotDelete sets up a mock expectation for deleting a snapshot by battle id
func ExpectSnapshotDelete(mockRepo *battlesmock.MockRepository, battleID string, err error) *gomock.Call {
	if err != nil {
		return mockRepo.EXPECT().
			Delete(gomock.Any(), battles.DeleteInput{ID: battleID}).
			Return(nil, err)
	}
	return mockRepo.EXPECT().
		Delete(gomock.Any(), battles.DeleteInput{ID: battleID}).
		Return(&battles.DeleteOutput{}, nil)
}
