package util

import (
	"fmt"

	"president-server/internal/rng"
)

var adjectives = []string{
	"Fast", "Slow", "Quick", "Speedy", "Trotting", "Weaving", "Waiving", "Gracious", "Healthy", "Happy", "Funny",
	"Red", "Blue", "Green", "Orange", "Purple", "Fuzzy", "Smiling", "Tall", "Grand", "Ultimate", "Prime",
	"Alpha", "Growling", "Slithering", "Swimming", "Flying", "Jumping", "Running", "Charging", "Shooting", "Bouncing",
	"Bounding", "Leaping",
}

var animals = []string{
	"Dog", "Cat", "Mouse", "Alligator", "Crocodile", "Shark", "Hippo", "Giraffe", "Antelope", "Lion", "Tiger",
	"Bear", "Muskrat", "Otter", "Dolphin", "Porcupine", "Gerbil", "Hedgehog", "Snake", "Lizard", "Chipmunk",
	"Bird", "Dinosaur", "Okapi", "Eagle", "Mandrill", "Bonobo", "Wolf", "Fox", "Armadillo", "Rhino", "Anteater",
	"Reindeer", "Deer", "Panda",
}

// GetRandomName returns a random name by combining an adjective with an animal
func GetRandomName(gen rng.Generator) string {
	adjectivesIndex := gen.Intn(len(adjectives))
	animalsIndex := gen.Intn(len(animals))

	return fmt.Sprintf("%s %s", adjectives[adjectivesIndex], animals[animalsIndex])
}

// GetRandomNames returns n distinct random names
// n must not exceed the number of possible names
func GetRandomNames(gen rng.Generator, n int) []string {
	if n > len(adjectives)*len(animals) {
		panic("not enough names")
	}

	seen := make(map[string]bool, n)
	names := make([]string, 0, n)
	for len(names) < n {
		name := GetRandomName(gen)
		if seen[name] {
			continue
		}

		seen[name] = true
		names = append(names, name)
	}

	return names
}
