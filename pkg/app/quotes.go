package app

import "math/rand"

var quotes = []string{
	"Don’t watch the clock; do what it does. Keep going.",
	"Success is the sum of small efforts repeated day in and day out.",
	"It always seems impossible until it’s done.",
	"Motivation gets you going, habit keeps you going.",
}

// Celebration is the one-time monthly goal toast.
const Celebration = "🎉 You've hit 80% of your monthly goals! 🎉"

// Quote returns a random motivational quote, shown when a task is
// completed.
func Quote() string {
	return quotes[rand.Intn(len(quotes))]
}
