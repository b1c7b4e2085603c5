package stress

// Severity-weighted lexicon for financial stress detection. Weights are in
// (0,1]; higher means stronger distress. Multi-word entries live in
// stressPhrases and are matched before single keywords so a phrase hit is not
// double-counted through its constituent words.

var stressPhrases = map[string]float64{
	"can't afford":       0.90,
	"cannot afford":      0.90,
	"behind on":          0.85,
	"missed payment":     0.85,
	"late payment":       0.80,
	"laid off":           0.85,
	"insufficient funds": 0.82,
	"maxed out":          0.80,
	"irregular income":   0.80,
	"unstable income":    0.78,
	"variable income":    0.70,
	"high interest":      0.68,
	"pay cut":            0.80,
	"reduced hours":      0.75,
	"can't sleep":        0.78,
	"out of control":     0.85,
	"falling behind":     0.80,
	"can't keep up":      0.78,
	"running out":        0.80,
	"not enough":         0.75,
	"no hope":            0.85,
	"afraid to check":    0.82,
	"won't be able":      0.78,
}

var stressKeywords = map[string]float64{
	// Crisis level
	"bankruptcy":  0.95,
	"bankrupt":    0.95,
	"foreclosure": 0.95,
	"eviction":    0.95,
	"evicted":     0.95,
	"default":     0.85,
	"collections": 0.90,
	"desperate":   0.90,
	"hopeless":    0.90,
	"drowning":    0.90,
	"overwhelmed": 0.85,
	"crisis":      0.90,
	"emergency":   0.85,
	"broke":       0.85,
	"overdue":     0.90,

	// Serious concern
	"struggling":  0.85,
	"struggle":    0.82,
	"stressed":    0.80,
	"anxious":     0.75,
	"anxiety":     0.75,
	"panic":       0.80,
	"worried":     0.70,
	"worry":       0.70,
	"afraid":      0.75,
	"scared":      0.78,
	"unemployed":  0.85,
	"fired":       0.85,
	"overdraft":   0.75,
	"trouble":     0.75,
	"burden":      0.75,
	"sinking":     0.80,
	"unaffordable": 0.80,

	// Elevated stress
	"debt":          0.60,
	"debts":         0.62,
	"owe":           0.60,
	"loan":          0.55,
	"concerned":     0.62,
	"uncertain":     0.65,
	"uncertainty":   0.68,
	"nervous":       0.65,
	"stretched":     0.70,
	"squeezed":      0.68,
	"unpredictable": 0.72,
	"volatile":      0.70,
	"bills":         0.58,
	"penalty":       0.70,

	// Life events
	"divorce":  0.75,
	"medical":  0.70,
	"hospital": 0.72,
	"illness":  0.75,
	"accident": 0.75,
	"funeral":  0.80,

	// Employment
	"layoff":   0.85,
	"seasonal": 0.70,
	"furlough": 0.80,

	// Emotional and behavioral
	"sleepless":  0.80,
	"depressed":  0.80,
	"ashamed":    0.75,
	"trapped":    0.82,
	"stuck":      0.75,
	"helpless":   0.85,
	"powerless":  0.82,
	"exhausted":  0.72,
	"avoiding":   0.78,
	"hiding":     0.80,
	"barely":     0.72,
	"worsening":  0.72,
	"impossible": 0.75,
}

// negations flip or soften a stress mention ("not worried anymore").
var negations = []string{
	"not ", "no longer ", "never ", "don't ", "dont ", "isn't ", "wasn't ",
	"stopped ", "anymore", "used to be ",
}

// intensifiers amplify the adjusted score.
var intensifiers = map[string]float64{
	"extremely ":  1.20,
	"incredibly ": 1.20,
	"very ":       1.10,
	"really ":     1.10,
	"so ":         1.05,
	"completely ": 1.15,
	"totally ":    1.15,
	"absolutely ": 1.15,
}

// mitigators signal an improving situation and scale the score down; the
// strongest (lowest factor) match wins.
var mitigators = map[string]float64{
	"but ":            0.85,
	"however ":        0.85,
	"although ":       0.85,
	"improving":       0.80,
	"better":          0.82,
	"getting better":  0.78,
	"making progress": 0.80,
	"on track":        0.75,
	"starting to":     0.85,
	"hope":            0.88,
	"hopefully":       0.88,
	"optimistic":      0.80,
	"confident":       0.82,
	"plan to":         0.85,
	"working on":      0.83,
	"trying to":       0.87,
	"manageable":      0.80,
	"under control":   0.75,
	"handling":        0.82,
	"coping":          0.83,
}
