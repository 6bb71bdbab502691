package pet

// Stat bounds. A stat may exceed MaxStat only transiently, pre-clamp, for the
// overfed check.
const (
	MinStat          = 20
	MaxStat          = 100
	OverfedThreshold = 120

	InitialStamina   = 50
	InitialHappiness = 50
	InitialHealth    = 50
)

// Lifecycle phase thresholds by turn count. The repository history carried a
// second table (1/3/5); this one is canonical.
const (
	BabyMaxTurn  = 1
	ChildMaxTurn = 4
	AdultMaxTurn = 8
)

// Food tokens and their effect triples.
const (
	FoodApple  = "🍎"
	FoodCookie = "🍪"
	FoodSalad  = "🥗"
	FoodPizza  = "🍕"
)

var FoodEffects = map[string]Effect{
	FoodApple:  {Stamina: 5, Happiness: 0, Health: 5},
	FoodCookie: {Stamina: 5, Happiness: 10, Health: -10},
	FoodSalad:  {Stamina: 15, Happiness: -10, Health: 15},
	FoodPizza:  {Stamina: 30, Happiness: 20, Health: -15},
}

// Activity tokens and their effect triples. Skiing carries special-case
// rules in the transition algorithm.
const (
	ActivityVideoGames = "🎮"
	ActivityRun        = "🏃"
	ActivitySkiing     = "🎿"
)

var PlayEffects = map[string]Effect{
	ActivityVideoGames: {Stamina: -5, Happiness: 25, Health: -10},
	ActivityRun:        {Stamina: -15, Happiness: 10, Health: 25},
	ActivitySkiing:     {Stamina: -20, Happiness: 30, Health: 15},
}

// Skiing crash check modulus: (turn*7 + stamina) % SkiCrashModulus == 0
// crashes, evaluated on pre-action values.
const SkiCrashModulus = 4

// Death reason strings. Achievement detection matches on substrings of
// these, so they are fixed text, not display copy.
const (
	DeathReasonBabySkiing = "Your baby shouldn't be on the slopes!"
	DeathReasonOverfed    = "Your pet exploded from overeating!"
	DeathReasonSkiCrash   = "Your pet crashed into a tree while skiing!"
	DeathReasonStarved    = "Your pet starved to death"
	DeathReasonSadness    = "Your pet died of sadness"
	DeathReasonPoorHealth = "Your pet died from poor health"
)
