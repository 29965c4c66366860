package game

// Encouragements are shown briefly after each letter pickup.
var Encouragements = []string{
	"Great job!", "Awesome!", "Keep going!", "You're doing great!", "Fantastic!",
	"Excellent!", "Well done!", "Amazing!", "Super!", "Perfect!", "Brilliant!",
	"You got it!", "Nice work!", "Terrific!", "Wonderful!", "Outstanding!",
	"Way to go!", "Keep it up!", "Good thinking!", "You're a star!",
}
