package models

// DifficultyLevel is the requested difficulty for a generated course.
type DifficultyLevel string

const (
	DifficultyEasy   DifficultyLevel = "easy"
	DifficultyMedium DifficultyLevel = "medium"
	DifficultyHard   DifficultyLevel = "hard"
)

func (d DifficultyLevel) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// CourseRequest is the payload for both course generation endpoints.
type CourseRequest struct {
	Subject    string          `json:"subject"`
	Difficulty DifficultyLevel `json:"difficulty"`
	FocusArea  string          `json:"focus_area"`
	Units      int             `json:"units"`
}

// UnitStub is the outline-level placeholder for a unit. It only exists
// between outline generation and unit expansion.
type UnitStub struct {
	UnitTitle       string `json:"unitTitle"`
	UnitDescription string `json:"unitDescription"`
}

// CourseOutline is the parse target for the outline model call.
type CourseOutline struct {
	CourseTitle       string     `json:"courseTitle"`
	DifficultyLevel   string     `json:"difficultyLevel"`
	Description       string     `json:"description"`
	Prerequisites     []string   `json:"prerequisites"`
	LearningOutcomes  []string   `json:"learningOutcomes"`
	Units             []UnitStub `json:"units"`
	Overview          string     `json:"overview"`
	AssessmentMethods []string   `json:"assessmentMethods"`
}

type TopicContent struct {
	Topic     string   `json:"topic"`
	Content   string   `json:"content"`
	Examples  []string `json:"examples"`
	Exercises []string `json:"exercises"`
}

type DetailedContent struct {
	TopicContents []TopicContent `json:"topicContents"`
}

// UnitDetail is a fully expanded unit. The head fields double as the parse
// target for the unit skeleton call; DetailedContent and YouTubeVideoURL
// are attached by the later pipeline steps.
type UnitDetail struct {
	UnitTitle          string          `json:"unitTitle"`
	LearningObjectives []string        `json:"learningObjectives"`
	TopicsCovered      []string        `json:"topicsCovered"`
	Resources          []string        `json:"resources"`
	EstimatedDuration  string          `json:"estimatedDuration"`
	DetailedContent    DetailedContent `json:"detailedContent"`
	YouTubeVideoURL    string          `json:"youtube_video_url"`
}

// Course is the full-detail generation response: the outline head with
// stubs replaced by expanded units.
type Course struct {
	CourseTitle       string       `json:"courseTitle"`
	DifficultyLevel   string       `json:"difficultyLevel"`
	Description       string       `json:"description"`
	Prerequisites     []string     `json:"prerequisites"`
	LearningOutcomes  []string     `json:"learningOutcomes"`
	Units             []UnitDetail `json:"units"`
	Overview          string       `json:"overview"`
	AssessmentMethods []string     `json:"assessmentMethods"`
}

type MCQ struct {
	QuestionID    string   `json:"questionId"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

type TopicQuestions struct {
	Topic     string `json:"topic"`
	Questions []MCQ  `json:"questions"`
}

type Assessment struct {
	UnitAssessment []TopicQuestions `json:"unitAssessment"`
}

// UnitAssessment is one unit of the quiz-oriented course variant.
type UnitAssessment struct {
	UnitTitle  string     `json:"unitTitle"`
	Assessment Assessment `json:"assessment"`
}

// AssessmentCourse is the MCQ generation response.
type AssessmentCourse struct {
	CourseTitle       string           `json:"courseTitle"`
	DifficultyLevel   string           `json:"difficultyLevel"`
	Description       string           `json:"description"`
	Prerequisites     []string         `json:"prerequisites"`
	LearningOutcomes  []string         `json:"learningOutcomes"`
	Units             []UnitAssessment `json:"units"`
	Overview          string           `json:"overview"`
	AssessmentMethods []string         `json:"assessmentMethods"`
}

type RecommendationRequest struct {
	StudentLevel string `json:"student_level"`
	Course       string `json:"course"`
}

type CourseRecommendation struct {
	Subject    string `json:"subject"`
	Units      int    `json:"units"`
	FocusArea  string `json:"focus_area"`
	Difficulty string `json:"difficulty"`
}

type RecommendationResponse struct {
	Recommendations []CourseRecommendation `json:"recommendations"`
}
