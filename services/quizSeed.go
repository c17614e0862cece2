package services

import "educare/models"

// seedQuestions is the fixed question bank written by QuizBank.Seed: seven
// categories, six questions each, spread over the three difficulty tiers.
var seedQuestions = []models.QuizQuestion{
	// alphabet
	newQuestion("q1", "alphabet", models.Easy, "Which letter comes after A?", []string{"B", "C", "D", "E"}, "B"),
	newQuestion("q2", "alphabet", models.Easy, "What is the first letter of the alphabet?", []string{"A", "B", "C", "D"}, "A"),
	newQuestion("q3", "alphabet", models.Easy, "Which letter comes before Z?", []string{"X", "Y", "W", "V"}, "Y"),
	newQuestion("q4", "alphabet", models.Medium, "How many letters are in the alphabet?", []string{"24", "25", "26", "27"}, "26"),
	newQuestion("q5", "alphabet", models.Medium, "Which letter is between M and O?", []string{"L", "N", "P", "K"}, "N"),
	newQuestion("q6", "alphabet", models.Hard, "What is the 10th letter of the alphabet?", []string{"I", "J", "K", "L"}, "J"),

	// numbers
	newQuestion("q7", "numbers", models.Easy, "What comes after 5?", []string{"4", "6", "7", "8"}, "6"),
	newQuestion("q8", "numbers", models.Easy, "What is 2 + 2?", []string{"3", "4", "5", "6"}, "4"),
	newQuestion("q9", "numbers", models.Easy, "Count: 1, 2, 3, __?", []string{"4", "5", "6", "7"}, "4"),
	newQuestion("q10", "numbers", models.Medium, "What is 5 + 3?", []string{"6", "7", "8", "9"}, "8"),
	newQuestion("q11", "numbers", models.Medium, "What is 10 - 4?", []string{"5", "6", "7", "8"}, "6"),
	newQuestion("q12", "numbers", models.Hard, "What is 7 × 2?", []string{"12", "13", "14", "15"}, "14"),

	// fruits
	newQuestion("q13", "fruits", models.Easy, "What color is an apple usually?", []string{"Red", "Blue", "Green", "Both Red and Green"}, "Both Red and Green"),
	newQuestion("q14", "fruits", models.Easy, "Which fruit is yellow and long?", []string{"Apple", "Banana", "Orange", "Grape"}, "Banana"),
	newQuestion("q15", "fruits", models.Easy, "What fruit is orange in color?", []string{"Apple", "Banana", "Orange", "Strawberry"}, "Orange"),
	newQuestion("q16", "fruits", models.Medium, "Which fruit has seeds on the outside?", []string{"Apple", "Banana", "Strawberry", "Orange"}, "Strawberry"),
	newQuestion("q17", "fruits", models.Medium, "Which fruit is known as the king of fruits?", []string{"Apple", "Mango", "Banana", "Grape"}, "Mango"),
	newQuestion("q18", "fruits", models.Hard, "Which fruit is also called a Chinese gooseberry?", []string{"Kiwi", "Lychee", "Dragon Fruit", "Papaya"}, "Kiwi"),

	// animals
	newQuestion("q19", "animals", models.Easy, "What sound does a dog make?", []string{"Meow", "Bark", "Moo", "Quack"}, "Bark"),
	newQuestion("q20", "animals", models.Easy, "What sound does a cat make?", []string{"Meow", "Bark", "Moo", "Quack"}, "Meow"),
	newQuestion("q21", "animals", models.Easy, "Which animal has a long trunk?", []string{"Lion", "Elephant", "Tiger", "Bear"}, "Elephant"),
	newQuestion("q22", "animals", models.Medium, "Which animal is known as the king of the jungle?", []string{"Tiger", "Lion", "Bear", "Elephant"}, "Lion"),
	newQuestion("q23", "animals", models.Medium, "Which bird cannot fly?", []string{"Sparrow", "Eagle", "Penguin", "Parrot"}, "Penguin"),
	newQuestion("q24", "animals", models.Hard, "What is a baby kangaroo called?", []string{"Cub", "Joey", "Pup", "Kit"}, "Joey"),

	// vegetables
	newQuestion("q25", "vegetables", models.Easy, "What color is a carrot?", []string{"Red", "Orange", "Blue", "Purple"}, "Orange"),
	newQuestion("q26", "vegetables", models.Easy, "Which vegetable makes you cry when you cut it?", []string{"Potato", "Onion", "Tomato", "Carrot"}, "Onion"),
	newQuestion("q27", "vegetables", models.Easy, "What color is broccoli?", []string{"Red", "Yellow", "Green", "Orange"}, "Green"),
	newQuestion("q28", "vegetables", models.Medium, "Which vegetable is used to make French fries?", []string{"Carrot", "Potato", "Tomato", "Onion"}, "Potato"),
	newQuestion("q29", "vegetables", models.Medium, "Which vegetable is long and green?", []string{"Carrot", "Potato", "Cucumber", "Onion"}, "Cucumber"),
	newQuestion("q30", "vegetables", models.Hard, "Which vegetable is also known as aubergine?", []string{"Zucchini", "Eggplant", "Bell Pepper", "Squash"}, "Eggplant"),

	// twoLetterWords
	newQuestion("q31", "twoLetterWords", models.Easy, "What word means \"in or to a place\"?", []string{"AT", "BY", "OR", "UP"}, "AT"),
	newQuestion("q32", "twoLetterWords", models.Easy, "What word means \"to move\"?", []string{"DO", "GO", "BE", "IS"}, "GO"),
	newQuestion("q33", "twoLetterWords", models.Easy, "What word means \"inside\"?", []string{"IN", "ON", "UP", "BY"}, "IN"),
	newQuestion("q34", "twoLetterWords", models.Medium, "What word means \"not any\"?", []string{"NO", "OR", "SO", "IF"}, "NO"),
	newQuestion("q35", "twoLetterWords", models.Medium, "What word means \"you and I\"?", []string{"US", "WE", "ME", "MY"}, "WE"),
	newQuestion("q36", "twoLetterWords", models.Hard, "Which word means \"in case that\"?", []string{"IF", "AS", "OR", "BY"}, "IF"),

	// threeLetterWords
	newQuestion("q37", "threeLetterWords", models.Easy, "What is the 3-letter word for a small pet animal?", []string{"DOG", "CAT", "BAT", "COW"}, "CAT"),
	newQuestion("q38", "threeLetterWords", models.Easy, "What is the 3-letter word for a friendly pet?", []string{"DOG", "CAT", "FOX", "COW"}, "DOG"),
	newQuestion("q39", "threeLetterWords", models.Easy, "What is the 3-letter word for a bright star in sky?", []string{"SUN", "SKY", "TOP", "BOX"}, "SUN"),
	newQuestion("q40", "threeLetterWords", models.Medium, "What is the 3-letter word for \"to move fast\"?", []string{"RUN", "JOY", "FAN", "NET"}, "RUN"),
	newQuestion("q41", "threeLetterWords", models.Medium, "What is the 3-letter word for \"happiness\"?", []string{"JOY", "RUN", "TOY", "KEY"}, "JOY"),
	newQuestion("q42", "threeLetterWords", models.Hard, "What 3-letter word means \"the highest part\"?", []string{"TOP", "NET", "MAP", "BOX"}, "TOP"),
}

func newQuestion(id, category string, d models.Difficulty, question string, options []string, answer string) models.QuizQuestion {
	return models.QuizQuestion{
		ID:            id,
		Category:      category,
		Difficulty:    d,
		Points:        models.PointsFor(d),
		Question:      question,
		Options:       options,
		CorrectAnswer: answer,
	}
}
