package ztminer

import "unicode/utf8"

// briefingLines is shown to first-time players before the first launch.
var briefingLines = []string{
	"Year 2187. The planet's core has gone unstable.",
	"Every surface colony was evacuated through the deep shafts. Yours was the last convoy.",
	"Your drill ship, the ZT Miner, was pinned under the core crust when the shafts collapsed.",
	"Five layers of rock stand between you and the surface: Core, Mantle, two crusts and the ice cap.",
	"The rock is infested. Drones hunt anything that moves and turrets guard the old tunnels.",
	"Hold X to drill through soft rock. Some walls will not give. Steer around them.",
	"Shoot with SPACE. Health cells drift down from the old supply lines.",
	"Climb, Pilot. Nobody is coming for you.",
}

// epilogueLines is shown after reaching the surface.
var epilogueLines = []string{
	"The ice cap cracks open and daylight floods the cockpit.",
	"Behind you the core shudders and falls silent.",
	"The relay picks up a faint signal: the convoy made it off-world.",
	"One berth on the last transport was held open. It has your name on it.",
	"The ZT Miner comes to rest on the surface. Mission complete.",
}

// runeLens returns the rune length of each line.
func runeLens(lines []string) []int {
	out := make([]int, len(lines))
	for i, l := range lines {
		out[i] = utf8.RuneCountInString(l)
	}
	return out
}

// revealed returns the first n runes of s.
func revealed(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
