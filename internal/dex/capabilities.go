package dex

import "github.com/KirkDiggler/rpg-battle/internal/entities/battle"

// Weather ids
const (
	WeatherHarshSunlight = "harshsunlight"
)

func sameEntity(a, b *battle.Pokemon) bool {
	return a != nil && b != nil && a.ID == b.ID
}

func standardWeathers() map[string]*Weather {
	return map[string]*Weather{
		WeatherHarshSunlight: {
			Capability: Capability{
				ID:   WeatherHarshSunlight,
				Name: "Harsh Sunlight",
				Desc: "Fire-type attacks have 1.5x power, Water-type attacks have 0.5x power.",
				Hooks: Hooks{
					OnBeforeDamageCalculation: func(_ *battle.State, _ *battle.Pokemon, ctx *DamageContext) {
						switch ctx.Move.Type {
						case "fire":
							ctx.Power *= 1.5
						case "water":
							ctx.Power *= 0.5
						}
					},
				},
			},
			Duration: 5,
		},
	}
}

func standardAbilities(d *Dex) map[string]*Capability {
	list := []*Capability{
		{
			ID: "chlorophyll", Name: "Chlorophyll", Num: 34,
			Desc: "If harsh sunlight is active, this Pokemon's Speed is doubled.",
			Hooks: Hooks{
				OnBeforeSpeedCalculation: func(s *battle.State, self *battle.Pokemon, ctx *SpeedContext) {
					if sameEntity(self, ctx.Entity) && s.Field.Weather != nil &&
						s.Field.Weather.ID == WeatherHarshSunlight {
						ctx.Speed *= 2
					}
				},
			},
		},
		{
			ID: "drought", Name: "Drought", Num: 70,
			Desc: "On switch-in, this Pokemon summons harsh sunlight.",
			Hooks: Hooks{
				OnActive: func(s *battle.State, self *battle.Pokemon, ctx *ActiveContext) {
					if !sameEntity(self, ctx.Entity) {
						return
					}
					if sun, err := d.GetWeather(WeatherHarshSunlight); err == nil {
						s.Field.Weather = &battle.Weather{ID: sun.ID, TurnsLeft: sun.Duration}
					}
				},
			},
		},
		{
			ID: "ironfist", Name: "Iron Fist", Num: 89,
			Desc: "This Pokemon's punch-based attacks have their power multiplied by 1.2.",
			Hooks: Hooks{
				OnBeforeDamageCalculation: func(_ *battle.State, self *battle.Pokemon, ctx *DamageContext) {
					if sameEntity(self, ctx.Attacker) && ctx.Move.Flags.Punch {
						ctx.Power *= 1.2
					}
				},
			},
		},
		{
			ID: "magicbounce", Name: "Magic Bounce", Num: 156,
			Desc: "This Pokemon blocks certain status moves and instead uses the move against the original user.",
		},
		{
			ID: "intimidate", Name: "Intimidate", Num: 22,
			Desc: "On switch-in, this Pokemon lowers the Attack of adjacent opponents by 1 stage.",
			Hooks: Hooks{
				OnActive: func(s *battle.State, self *battle.Pokemon, ctx *ActiveContext) {
					if !sameEntity(self, ctx.Entity) {
						return
					}
					rival := s.Player(battle.RivalID(self.Side))
					if rival == nil {
						return
					}
					for _, foe := range rival.Active {
						if foe != nil {
							foe.Boosts.Add(battle.BoostAtk, -1)
						}
					}
				},
			},
		},
		{
			ID: "frisk", Name: "Frisk", Num: 119,
			Desc: "On switch-in, this Pokemon identifies the held items of all opposing Pokemon.",
		},
	}
	out := make(map[string]*Capability, len(list))
	for _, a := range list {
		out[a.ID] = a
	}
	return out
}

func standardItems(d *Dex) map[string]*Capability {
	list := []*Capability{
		{
			ID: "charcoal", Name: "Charcoal", Num: 249,
			Desc: "Holder's Fire-type attacks have 1.2x power.",
			Hooks: Hooks{
				OnBeforeDamageCalculation: func(_ *battle.State, self *battle.Pokemon, ctx *DamageContext) {
					if sameEntity(self, ctx.Attacker) && ctx.Move.Type == "fire" {
						ctx.Power *= 1.2
					}
				},
			},
		},
		{
			ID: "widelens", Name: "Wide Lens", Num: 265,
			Desc: "The accuracy of attacks by the holder is 1.1x.",
			Hooks: Hooks{
				OnModifyAccuracy: func(_ *battle.State, self *battle.Pokemon, ctx *AccuracyContext) {
					if sameEntity(self, ctx.Attacker) {
						ctx.Accuracy *= 1.1
					}
				},
			},
		},
		{
			ID: "lifeorb", Name: "Life Orb", Num: 270,
			Desc: "Holder's attacks do 1.3x damage, and it loses 1/10 its max HP after the attack.",
			Hooks: Hooks{
				OnBeforeDamageCalculation: func(_ *battle.State, self *battle.Pokemon, ctx *DamageContext) {
					if sameEntity(self, ctx.Attacker) {
						ctx.Power *= 1.3
					}
				},
				OnAfterAttack: func(_ *battle.State, self *battle.Pokemon, ctx *AttackContext) {
					if sameEntity(self, ctx.Attacker) && ctx.DidDamage {
						self.SubtractHP(float64(self.MaxHP) / 10)
					}
				},
			},
		},
		{
			ID: "focussash", Name: "Focus Sash", Num: 275,
			Desc: "If holder's HP is full, will survive an attack that would KO it with 1 HP. Single use.",
			Hooks: Hooks{
				OnBeforeDamageApplication: func(_ *battle.State, self *battle.Pokemon, ctx *DamageContext) {
					if sameEntity(self, ctx.Target) && self.Item.Uses == 0 &&
						self.HP == self.MaxHP && ctx.Damage >= float64(self.MaxHP) {
						ctx.Damage = float64(self.MaxHP - 1)
						self.Item.Uses++
					}
				},
			},
		},
		{
			ID: "eviolite", Name: "Eviolite", Num: 538,
			Desc: "If holder's species can evolve, its Defense and Sp. Def are 1.5x.",
			Hooks: Hooks{
				OnBeforeDamageCalculation: func(_ *battle.State, self *battle.Pokemon, ctx *DamageContext) {
					if !sameEntity(self, ctx.Target) {
						return
					}
					if species, ok := d.Species[self.Build.Species]; ok && species.CanEvolve {
						ctx.DefenseStat *= 1.5
					}
				},
			},
		},
		{
			ID: "assaultvest", Name: "Assault Vest", Num: 640,
			Desc: "Holder's Sp. Def is 1.5x, but it can only select damaging moves.",
			Hooks: Hooks{
				OnBeforeDamageCalculation: func(_ *battle.State, self *battle.Pokemon, ctx *DamageContext) {
					if sameEntity(self, ctx.Target) && ctx.DefenseKey == battle.StatSpD {
						ctx.DefenseStat *= 1.5
					}
				},
			},
		},
	}
	out := make(map[string]*Capability, len(list))
	for _, i := range list {
		out[i.ID] = i
	}
	return out
}
