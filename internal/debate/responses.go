package debate

import "github.com/Iron-Ham/parliament/internal/roster"

// responses holds five canned statements per orientation.
var responses = map[roster.Orientation][]string{
	roster.FarLeft: {
		"We must radically transform the system to address this issue.",
		"The struggle of the people demands revolutionary action on this matter.",
		"This is another example of systemic inequalities that must be uprooted.",
		"We need complete restructuring, not incremental change.",
		"Power must be returned to the people, not concentrated in the hands of the few.",
	},
	roster.LeftWing: {
		"We should invest more in public services to address this challenge.",
		"This requires a compassionate approach that protects the vulnerable.",
		"Government intervention is necessary to ensure fairness and equality.",
		"We must consider the social impact alongside economic factors.",
		"Progressive taxation would help fund solutions to this problem.",
	},
	roster.Center: {
		"We need a balanced approach that considers all perspectives.",
		"Let's find a pragmatic solution that works for everyone.",
		"Both sides have valid points, but compromise is essential.",
		"We should follow the evidence while respecting diverse viewpoints.",
		"Incremental, practical steps will move us forward on this issue.",
	},
	roster.RightWing: {
		"The free market will provide the most efficient solution here.",
		"We must reduce regulations to allow innovation to address this challenge.",
		"Lower taxes will stimulate the growth needed to solve this problem.",
		"Traditional values and personal responsibility are central to this issue.",
		"The private sector, not government, should take the lead on this.",
	},
	roster.FarRight: {
		"This threatens our national sovereignty and traditional way of life.",
		"Radical elements are undermining our society with this agenda.",
		"Strong leadership is needed to restore order in this matter.",
		"We must protect our heritage and values against these changes.",
		"Law and order must be the priority in addressing this situation.",
	},
}

// Responses returns the canned statements for an orientation. Unknown
// orientations get the Center set.
func Responses(o roster.Orientation) []string {
	if r, ok := responses[o]; ok {
		return append([]string(nil), r...)
	}
	return append([]string(nil), responses[roster.Center]...)
}
