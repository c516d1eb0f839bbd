package run

import (
	"math/rand"
	"time"
)

var (
	adjectives = []string{
		"autumn", "hidden", "bitter", "misty", "silent", "empty", "dry", "dark",
		"summer", "icy", "delicate", "quiet", "white", "cool", "spring", "winter",
		"patient", "twilight", "dawn", "crimson", "wispy", "weathered", "blue",
		"glossy", "matte", "bright", "dim", "shaded", "mirrored", "tinted",
		"long", "late", "lingering", "bold", "little", "morning", "polished",
		"red", "rough", "still", "small", "sparkling", "shy", "wandering",
		"wild", "black", "young", "solitary", "proud", "restless", "purple",
		"lively", "nameless", "lucky", "oddball", "crystal", "glowing", "hazy",
	}

	nouns = []string{
		"prism", "lens", "mirror", "beam", "ray", "shadow", "glint", "flare",
		"sphere", "cube", "plane", "facet", "vertex", "horizon", "pixel",
		"lantern", "candle", "spotlight", "sunset", "dawn", "moon", "star",
		"glitter", "cloud", "haze", "frost", "fog", "window", "pane", "glass",
		"silhouette", "spectrum", "rainbow", "ember", "spark", "gleam", "shine",
		"halo", "aurora", "eclipse", "comet", "lamp", "torch", "beacon",
		"silver", "brass", "gold", "copper", "chrome", "marble", "pearl",
	}
)

// GenerateName creates a memorable run identifier in the format
// "adjective-noun"
func GenerateName() string {
	adj := adjectives[rand.Intn(len(adjectives))]
	noun := nouns[rand.Intn(len(nouns))]

	return adj + "-" + noun
}

// GenerateID combines a memorable name with a timestamp
func GenerateID() string {
	timestamp := time.Now().UTC().Format("20060102-150405")
	return GenerateName() + "-" + timestamp
}
