package models

// StudySession is one scheduled block of a generated study plan.
type StudySession struct {
	Day             string   `json:"day"`
	Topic           string   `json:"topic"`
	Activities      []string `json:"activities"`
	DurationMinutes int      `json:"durationMinutes"`
}

// Flashcard is a front/back study card.
type Flashcard struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

// ReviewQuestion is a self-test question with its answer.
type ReviewQuestion struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// StudyPlan is the full exam-preparation kit returned by the model. All
// fields are required in the service response.
type StudyPlan struct {
	Subject         string           `json:"subject"`
	Goal            string           `json:"goal"`
	Sessions        []StudySession   `json:"sessions"`
	Flashcards      []Flashcard      `json:"flashcards"`
	ReviewQuestions []ReviewQuestion `json:"reviewQuestions"`
	Tips            []string         `json:"tips"`
}
