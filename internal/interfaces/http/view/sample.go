package view

import (
	"math"
	"math/rand"
	"strconv"
)

var firstNames = []string{
	"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael",
	"Linda", "David", "Elizabeth", "William", "Barbara", "Richard", "Susan",
	"Joseph", "Jessica", "Thomas", "Sarah", "Charles", "Karen",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez",
	"Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin",
}

// SampleIntakeForm prepopulates the form with a random full name and an
// amount in [0, 100) rounded to two decimals.
func SampleIntakeForm() IntakeForm {
	name := firstNames[rand.Intn(len(firstNames))] + " " + lastNames[rand.Intn(len(lastNames))]
	amount := math.Round(rand.Float64()*100*100) / 100

	return IntakeForm{
		Customer: name,
		Amount:   strconv.FormatFloat(amount, 'f', 2, 64),
	}
}
