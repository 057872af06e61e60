package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"

	"coursegen-backend/internal/models"
	"coursegen-backend/internal/worker"
)

// textGenerator is the slice of the Gemini client the pipelines consume.
type textGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// videoFinder is the slice of the YouTube client the pipelines consume.
type videoFinder interface {
	FindVideo(ctx context.Context, query string) VideoResult
}

// CourseService runs the multi-step generation pipelines: course outline,
// per-unit expansion, and per-unit assessment.
type CourseService struct {
	gemini  textGenerator
	youtube videoFinder
}

func NewCourseService(gemini textGenerator, youtube videoFinder) *CourseService {
	return &CourseService{gemini: gemini, youtube: youtube}
}

// GenerateCourse builds a full-detail course: one outline call, then each
// unit expanded in sequence. A unit that fails is logged and skipped so a
// single bad model response does not sink the whole course; only a course
// with zero surviving units is an error.
func (s *CourseService) GenerateCourse(ctx context.Context, req models.CourseRequest) (*models.Course, error) {
	outline, err := s.generateOutline(ctx, req)
	if err != nil {
		return nil, err
	}

	units := make([]models.UnitDetail, 0, len(outline.Units))
	for _, stub := range outline.Units {
		unit, err := s.generateUnitDetail(ctx, stub.UnitTitle, req)
		if err != nil {
			log.Printf("Error processing unit %s: %v", stub.UnitTitle, err)
			continue
		}
		units = append(units, unit)
	}
	if len(units) == 0 {
		return nil, &GenerationError{Message: "failed to generate any unit details"}
	}

	return &models.Course{
		CourseTitle:       outline.CourseTitle,
		DifficultyLevel:   outline.DifficultyLevel,
		Description:       outline.Description,
		Prerequisites:     outline.Prerequisites,
		LearningOutcomes:  outline.LearningOutcomes,
		Units:             units,
		Overview:          outline.Overview,
		AssessmentMethods: outline.AssessmentMethods,
	}, nil
}

// GenerateAssessmentCourse builds the MCQ variant. Units are independent
// here, so they fan out concurrently; results come back in outline order.
func (s *CourseService) GenerateAssessmentCourse(ctx context.Context, req models.CourseRequest) (*models.AssessmentCourse, error) {
	outline, err := s.generateOutline(ctx, req)
	if err != nil {
		return nil, err
	}

	tasks := make([]worker.Task[models.UnitAssessment], len(outline.Units))
	for i, stub := range outline.Units {
		unitTitle := stub.UnitTitle
		tasks[i] = func(ctx context.Context) (models.UnitAssessment, error) {
			return s.generateUnitAssessment(ctx, unitTitle, req)
		}
	}

	units := make([]models.UnitAssessment, 0, len(tasks))
	for i, outcome := range worker.JoinAll(ctx, tasks) {
		if outcome.Err != nil {
			log.Printf("Error processing unit %s: %v", outline.Units[i].UnitTitle, outcome.Err)
			continue
		}
		units = append(units, outcome.Value)
	}
	if len(units) == 0 {
		return nil, &GenerationError{Message: "failed to generate any unit assessments"}
	}

	return &models.AssessmentCourse{
		CourseTitle:       outline.CourseTitle,
		DifficultyLevel:   outline.DifficultyLevel,
		Description:       outline.Description,
		Prerequisites:     outline.Prerequisites,
		LearningOutcomes:  outline.LearningOutcomes,
		Units:             units,
		Overview:          outline.Overview,
		AssessmentMethods: outline.AssessmentMethods,
	}, nil
}

func (s *CourseService) generateOutline(ctx context.Context, req models.CourseRequest) (*models.CourseOutline, error) {
	raw, err := s.gemini.Generate(ctx, buildOutlinePrompt(req))
	if err != nil {
		return nil, err
	}

	var outline models.CourseOutline
	if err := json.Unmarshal([]byte(stripFences(raw)), &outline); err != nil {
		return nil, &GenerationError{Message: "Gemini response is not in valid JSON format."}
	}

	return &outline, nil
}

// generateUnitDetail expands one outline stub: skeleton, then long-form
// content, then a video lookup. The video step cannot fail the unit; its
// outcome is folded into the URL field either way.
func (s *CourseService) generateUnitDetail(ctx context.Context, unitTitle string, req models.CourseRequest) (models.UnitDetail, error) {
	raw, err := s.gemini.Generate(ctx, buildUnitSkeletonPrompt(unitTitle, req))
	if err != nil {
		return models.UnitDetail{}, err
	}

	var unit models.UnitDetail
	if err := json.Unmarshal([]byte(stripFences(raw)), &unit); err != nil {
		return models.UnitDetail{}, &GenerationError{Message: fmt.Sprintf("unit %q: structure response is not valid JSON", unitTitle)}
	}

	if err := s.generateUnitContent(ctx, &unit, req); err != nil {
		return models.UnitDetail{}, err
	}

	video := s.youtube.FindVideo(ctx, videoQuery(unitTitle, req))
	if video.Status == VideoTimedOut {
		log.Printf("YouTube lookup timed out for unit %q", unitTitle)
	}
	unit.YouTubeVideoURL = video.String()

	return unit, nil
}

func (s *CourseService) generateUnitContent(ctx context.Context, unit *models.UnitDetail, req models.CourseRequest) error {
	raw, err := s.gemini.Generate(ctx, buildUnitContentPrompt(unit, req))
	if err != nil {
		return err
	}

	var content models.DetailedContent
	if err := json.Unmarshal([]byte(stripFences(raw)), &content); err != nil {
		return &GenerationError{Message: fmt.Sprintf("unit %q: content response is not valid JSON", unit.UnitTitle)}
	}
	unit.DetailedContent = content

	return nil
}

// generateUnitAssessment builds the question set for one unit. The title
// the MCQ prompt sees is the one the skeleton call returned, not the
// requested one, so the questions track whatever the model named the unit.
func (s *CourseService) generateUnitAssessment(ctx context.Context, unitTitle string, req models.CourseRequest) (models.UnitAssessment, error) {
	raw, err := s.gemini.Generate(ctx, buildMCQSkeletonPrompt(unitTitle, req))
	if err != nil {
		return models.UnitAssessment{}, err
	}

	var stub models.UnitStub
	if err := json.Unmarshal([]byte(stripFences(raw)), &stub); err != nil {
		return models.UnitAssessment{}, &GenerationError{Message: fmt.Sprintf("unit %q: structure response is not valid JSON", unitTitle)}
	}

	raw, err = s.gemini.Generate(ctx, buildMCQPrompt(stub.UnitTitle, req))
	if err != nil {
		return models.UnitAssessment{}, err
	}

	var assessment models.Assessment
	if err := json.Unmarshal([]byte(stripFences(raw)), &assessment); err != nil {
		return models.UnitAssessment{}, &GenerationError{Message: fmt.Sprintf("unit %q: assessment response is not valid JSON", stub.UnitTitle)}
	}
	fillQuestionIDs(&assessment)

	return models.UnitAssessment{UnitTitle: stub.UnitTitle, Assessment: assessment}, nil
}

// fillQuestionIDs backfills IDs the model left blank. IDs the model did
// supply are kept as-is.
func fillQuestionIDs(assessment *models.Assessment) {
	for i := range assessment.UnitAssessment {
		for j := range assessment.UnitAssessment[i].Questions {
			if assessment.UnitAssessment[i].Questions[j].QuestionID == "" {
				assessment.UnitAssessment[i].Questions[j].QuestionID = uuid.NewString()
			}
		}
	}
}

func videoQuery(unitTitle string, req models.CourseRequest) string {
	return fmt.Sprintf("%s %s %s", unitTitle, req.Subject, req.FocusArea)
}
