package sentiment

// valence lexicon. Scores follow the VADER convention: roughly -4 (most
// negative) to +4 (most positive).
var lexicon = map[string]float64{
	"amazing":       3.1,
	"awesome":       3.1,
	"excellent":     3.2,
	"fantastic":     3.3,
	"great":         3.1,
	"outstanding":   3.4,
	"wonderful":     3.2,
	"incredible":    2.9,
	"perfect":       2.7,
	"best":          3.2,
	"love":          3.2,
	"loved":         2.9,
	"enjoy":         2.2,
	"enjoyed":       2.3,
	"helpful":       1.9,
	"helped":        1.7,
	"help":          1.7,
	"encouraging":   2.2,
	"supportive":    2.1,
	"support":       1.7,
	"patient":       1.8,
	"kind":          2.4,
	"friendly":      2.2,
	"knowledgeable": 2.0,
	"insightful":    2.1,
	"clear":         1.4,
	"responsive":    1.6,
	"reliable":      1.8,
	"motivated":     1.9,
	"motivating":    2.0,
	"inspiring":     2.6,
	"confident":     2.2,
	"progress":      1.5,
	"improved":      1.9,
	"improvement":   1.5,
	"learned":       1.4,
	"thank":         1.9,
	"thanks":        1.9,
	"grateful":      2.4,
	"appreciate":    2.0,
	"appreciated":   2.1,
	"happy":         2.7,
	"glad":          2.0,
	"good":          1.9,
	"nice":          1.8,
	"fun":           2.3,
	"productive":    1.8,
	"valuable":      1.9,
	"recommend":     1.6,
	"like":          1.5,
	"liked":         1.6,
	"fine":          0.8,
	"okay":          0.9,
	"ok":            0.9,

	"bad":            -2.5,
	"terrible":       -3.1,
	"awful":          -3.0,
	"horrible":       -3.0,
	"worst":          -3.1,
	"hate":           -2.7,
	"hated":          -2.8,
	"useless":        -1.8,
	"waste":          -1.8,
	"wasted":         -1.9,
	"disappointed":   -2.0,
	"disappointing":  -2.1,
	"frustrated":     -2.1,
	"frustrating":    -2.2,
	"confused":       -1.4,
	"confusing":      -1.5,
	"unclear":        -1.3,
	"boring":         -1.3,
	"rude":           -2.4,
	"dismissive":     -1.9,
	"condescending":  -2.2,
	"unhelpful":      -1.9,
	"unprepared":     -1.6,
	"unreliable":     -1.9,
	"unresponsive":   -1.7,
	"late":           -1.1,
	"cancelled":      -1.2,
	"canceled":       -1.2,
	"missed":         -1.2,
	"slow":           -1.0,
	"difficult":      -1.2,
	"hard":           -0.9,
	"stuck":          -1.2,
	"lost":           -1.3,
	"overwhelmed":    -1.5,
	"discouraged":    -1.9,
	"discouraging":   -2.0,
	"stressful":      -1.8,
	"problem":        -1.3,
	"problems":       -1.4,
	"issue":          -0.9,
	"issues":         -1.0,
	"quit":           -1.6,
	"disrespectful":  -2.3,
	"unprofessional": -2.1,
	"poor":           -2.0,
	"mediocre":       -0.9,
}

// negations flip the valence of a following lexicon word.
var negations = map[string]bool{
	"not":     true,
	"no":      true,
	"never":   true,
	"neither": true,
	"nor":     true,
	"nothing": true,
	"hardly":  true,
	"barely":  true,
	"without": true,
	"isnt":    true,
	"wasnt":   true,
	"arent":   true,
	"werent":  true,
	"dont":    true,
	"doesnt":  true,
	"didnt":   true,
	"cant":    true,
	"cannot":  true,
	"couldnt": true,
	"wont":    true,
	"wouldnt": true,
}

// boosters scale the valence of a following lexicon word up or down.
var boosters = map[string]float64{
	"very":       0.293,
	"really":     0.293,
	"extremely":  0.293,
	"incredibly": 0.293,
	"absolutely": 0.293,
	"so":         0.293,
	"totally":    0.293,
	"super":      0.293,
	"especially": 0.293,
	"slightly":   -0.293,
	"somewhat":   -0.293,
	"kinda":      -0.293,
	"marginally": -0.293,
	"little":     -0.293,
}
