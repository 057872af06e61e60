package services

import (
	"fmt"
	"strings"

	"coursegen-backend/internal/models"
)

func buildOutlinePrompt(req models.CourseRequest) string {
	return fmt.Sprintf(`Generate a comprehensive course structure for %s with exactly %d units.
Focus area: %s
Difficulty: %s

Return ONLY unit titles in this JSON format:
{
    "courseTitle": "",
    "difficultyLevel": "",
    "description": "",
    "prerequisites": ["prerequisite 1", "prerequisite 2"],
    "learningOutcomes": ["outcome 1", "outcome 2"],
    "units": [
        {
            "unitTitle": "",
            "unitDescription": ""
        }
    ],
    "overview": "",
    "assessmentMethods": ["method 1", "method 2"]
}`, req.Subject, req.Units, req.FocusArea, req.Difficulty)
}

func buildUnitSkeletonPrompt(unitTitle string, req models.CourseRequest) string {
	return fmt.Sprintf(`Generate a detailed unit structure for %q in %s course.
Difficulty level: %s
Focus area: %s

Return the response in this JSON format:
{
    "unitTitle": %q,
    "learningObjectives": ["detailed objective 1", "detailed objective 2"],
    "topicsCovered": ["detailed topic 1", "detailed topic 2"],
    "resources": ["resource 1", "resource 2"],
    "estimatedDuration": "X weeks"
}

Ensure content matches the difficulty level and focuses on practical applications.`,
		unitTitle, req.Subject, req.Difficulty, req.FocusArea, unitTitle)
}

func buildUnitContentPrompt(unit *models.UnitDetail, req models.CourseRequest) string {
	return fmt.Sprintf(`Generate detailed educational content for the unit %q in %s.
Topics to cover: %s
Learning objectives: %s
Difficulty level: %s
Focus area: %s

Return the response in this JSON format:
{
    "topicContents": [
        {
            "topic": "Topic Name",
            "content": "Detailed explanation and educational content",
            "examples": ["example 1", "example 2"],
            "exercises": ["exercise 1", "exercise 2"]
        }
    ]
}

Ensure content is practical and matches the specified difficulty level.
Give the content in about minimum 6000 words.`,
		unit.UnitTitle, req.Subject,
		strings.Join(unit.TopicsCovered, ", "),
		strings.Join(unit.LearningObjectives, ", "),
		req.Difficulty, req.FocusArea)
}

// buildMCQSkeletonPrompt asks for a title-only unit structure. The MCQ
// variant deliberately requests a narrower skeleton than the full one.
func buildMCQSkeletonPrompt(unitTitle string, req models.CourseRequest) string {
	return fmt.Sprintf(`Generate a detailed unit structure for %q in %s course.
Difficulty level: %s
Focus area: %s

Return the response in this JSON format:
{
    "unitTitle": %q
}

Ensure content matches the difficulty level and focuses on practical applications.`,
		unitTitle, req.Subject, req.Difficulty, req.FocusArea, unitTitle)
}

func buildMCQPrompt(unitTitle string, req models.CourseRequest) string {
	return fmt.Sprintf(`Generate Multiple Choice Questions (MCQs) for the unit %q in %s.
Difficulty level: %s
Focus area: %s

Return the response in this JSON format:
{
    "unitAssessment": [
        {
            "topic": "Topic Name",
            "questions": [
                {
                    "questionId": "unique_id",
                    "question": "Question text",
                    "options": [
                        "Option A",
                        "Option B",
                        "Option C",
                        "Option D"
                    ],
                    "correctAnswer": "Correct option",
                    "explanation": "Explanation of the correct answer"
                }
            ]
        }
    ]
}

Generate at least 3 MCQs per topic, and only 3 topics, ensuring they match the difficulty level.`,
		unitTitle, req.Subject, req.Difficulty, req.FocusArea)
}

func buildDoubtPrompt(question string) string {
	return fmt.Sprintf("You are a doubt chatbot for students and you have to resolve students doubts. The question is: %s", question)
}

func buildRecommendationPrompt(studentLevel, course string) string {
	return fmt.Sprintf(`You are an intelligent assistant specializing in educational course recommendations.
Based on the student's level and the specified course, recommend 4 appropriate courses with the following details:
Subject, Number of Units, Focus Area, and Difficulty Level. Respond in JSON format.

Input:
1. Student Level: %s
2. Course: %s

Output:
    {
        "subject": "Python",
        "units": 3,
        "focus_area": "Python Basics",
        "difficulty": "Beginner"
    },
    {
        "subject": "Data Structures",
        "units": 3,
        "focus_area": "Arrays and Linked Lists",
        "difficulty": "Intermediate"
    },
    {
        "subject": "Algorithms",
        "units": 3,
        "focus_area": "Sorting and Searching",
        "difficulty": "Intermediate"
    },
    {
        "subject": "Advanced Python",
        "units": 3,
        "focus_area": "Python for Data Science",
        "difficulty": "Advanced"
    }`, studentLevel, course)
}

func buildDomainPrompt(content string) string {
	return fmt.Sprintf(`Analyze the following educational content and determine its subject domain (e.g., Mathematics, Physics, Biology, History, etc.)
and subdomain (if applicable). Provide a brief explanation for why you classified it as that domain and subdomain.
Format your response as JSON with three fields: 'domain', 'subdomain', and 'explanation'.

Content: %s`, content)
}
