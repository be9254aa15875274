package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/kishanbharadwajmg/Smart-Diet-Planner/models"
	"github.com/kishanbharadwajmg/Smart-Diet-Planner/nutrition"
	"gorm.io/gorm"
)

const defaultGeminiModel = "gemini-1.5-flash"

// AIService drafts diet plans and answers nutrition questions with a hosted
// text-generation model. It is best-effort enrichment only: every entry point
// falls back to the deterministic engine when the API is unreachable or no
// key is configured, and the fallback result is complete on its own.
type AIService struct {
	client *http.Client
	apiKey string
	model  string
	foods  *FoodService
	prefs  *PreferenceService
}

func NewAIService(db *gorm.DB) *AIService {
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = defaultGeminiModel
	}
	return &AIService{
		client: &http.Client{Timeout: 30 * time.Second},
		apiKey: os.Getenv("GEMINI_API_KEY"),
		model:  model,
		foods:  NewFoodService(db),
		prefs:  NewPreferenceService(db),
	}
}

type GenerateResult struct {
	Success bool   `json:"success"`
	Text    string `json:"text,omitempty"`
	Error   string `json:"error,omitempty"`
}

// generateText calls the Gemini generateContent endpoint. Non-200 responses
// surface the raw error body for diagnosis.
func (s *AIService) generateText(prompt, systemPrompt string, maxTokens int) GenerateResult {
	if s.apiKey == "" {
		return GenerateResult{Error: "GEMINI_API_KEY not set"}
	}

	full := prompt
	if systemPrompt != "" {
		full = systemPrompt + "\n\n" + prompt
	}
	body := map[string]any{
		"contents": []map[string]any{
			{"parts": []map[string]string{{"text": full}}},
		},
		"generationConfig": map[string]any{
			"maxOutputTokens": maxTokens,
			"temperature":     0.3,
		},
	}
	b, _ := json.Marshal(body)

	url := fmt.Sprintf(
		"https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s",
		s.model, s.apiKey,
	)
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return GenerateResult{Error: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return GenerateResult{Error: fmt.Sprintf("gemini request error: %v", err)}
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return GenerateResult{Error: fmt.Sprintf("read gemini response: %v", err)}
	}
	if resp.StatusCode != http.StatusOK {
		preview := string(respBytes)
		if len(preview) > 200 {
			preview = preview[:200] + "..."
		}
		return GenerateResult{Error: fmt.Sprintf("gemini api error (%d): %s", resp.StatusCode, preview)}
	}

	var out struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(respBytes, &out); err != nil {
		return GenerateResult{Error: fmt.Sprintf("decode gemini response: %v", err)}
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return GenerateResult{Error: "empty gemini response"}
	}

	text := strings.TrimSpace(out.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return GenerateResult{Error: "empty gemini response"}
	}
	return GenerateResult{Success: true, Text: text}
}

func profileSummary(user *models.User) string {
	bmi := nutrition.BMI(user.WeightKg, user.HeightCm)
	return fmt.Sprintf(
		"Age %d, gender %s, %.0f cm, %.1f kg, BMI %.1f (%s), activity %s, diet %s, diabetic: %t, daily goal %.0f kcal.",
		user.Age, user.Gender, user.HeightCm, user.WeightKg,
		bmi, nutrition.BMICategory(bmi),
		user.ActivityLevel, user.FoodPreference, user.IsDiabetic,
		user.CalorieGoalOr(nutrition.DefaultCalorieGoal),
	)
}

// restrictionNote renders the user's recorded allergies, dislikes and
// medical restrictions for the model prompt. Empty when none are recorded.
func (s *AIService) restrictionNote(userID uint) string {
	grouped, err := s.prefs.Grouped(userID)
	if err != nil {
		return ""
	}
	var parts []string
	if len(grouped["allergy"]) > 0 {
		parts = append(parts, "Allergies: "+strings.Join(grouped["allergy"], ", ")+".")
	}
	if len(grouped["dislike"]) > 0 {
		parts = append(parts, "Dislikes: "+strings.Join(grouped["dislike"], ", ")+".")
	}
	if len(grouped["medical"]) > 0 {
		parts = append(parts, "Medical restrictions: "+strings.Join(grouped["medical"], ", ")+".")
	}
	return strings.Join(parts, " ")
}

// DietPlan drafts a one-day plan. AI output when available, deterministic
// recommendations otherwise.
func (s *AIService) DietPlan(user *models.User) (map[string]any, error) {
	context := profileSummary(user)
	if note := s.restrictionNote(user.ID); note != "" {
		context += " " + note
	}
	prompt := fmt.Sprintf(
		"Create a one-day Indian diet plan for this profile, split across Breakfast, Mid-Morning, Lunch, Evening Snack, Dinner and Late Night, staying near the calorie goal. %s",
		context,
	)
	res := s.generateText(prompt, "You are a nutritionist specialising in South Indian cuisine.", 2000)
	if res.Success {
		return map[string]any{"source": "ai", "plan_text": res.Text}, nil
	}
	return s.fallbackDietPlan(user)
}

// fallbackDietPlan builds a plan purely from the recommendation engine.
func (s *AIService) fallbackDietPlan(user *models.User) (map[string]any, error) {
	meals := map[string]any{}
	for _, slot := range models.MealTypes {
		foods, err := s.foods.Recommend(user, slot, 3)
		if err != nil {
			return nil, err
		}
		var entries []map[string]any
		for i := range foods {
			f := &foods[i]
			serving := nutrition.ServingUnits(f)
			entries = append(entries, map[string]any{
				"food_id":   f.ID,
				"name":      f.Name,
				"category":  f.Category,
				"serving":   serving,
				"nutrition": nutrition.Scale(f, f.ServingSizeGrams),
			})
		}
		meals[slot] = entries
	}
	return map[string]any{
		"source":       "fallback",
		"calorie_goal": user.CalorieGoalOr(nutrition.DefaultCalorieGoal),
		"meals":        meals,
	}, nil
}

// AnswerQuestion answers a free-text nutrition question, falling back to a
// profile-derived summary answer.
func (s *AIService) AnswerQuestion(question string, user *models.User) (map[string]any, error) {
	context := profileSummary(user)
	if note := s.restrictionNote(user.ID); note != "" {
		context += " " + note
	}
	prompt := fmt.Sprintf("Answer this nutrition question for the profile below in a short, practical way.\nProfile: %s\nQuestion: %s", context, question)
	res := s.generateText(prompt, "You are a pragmatic dietician. Be concise.", 800)
	if res.Success {
		return map[string]any{"source": "ai", "answer": res.Text}, nil
	}

	macros := nutrition.MacroTargets(user.CalorieGoalOr(nutrition.DefaultCalorieGoal))
	answer := fmt.Sprintf(
		"Based on your profile: aim for about %.0f kcal per day, with roughly %.0fg protein, %.0fg carbs and %.0fg fat. %s",
		user.CalorieGoalOr(nutrition.DefaultCalorieGoal),
		macros.Protein, macros.Carbs, macros.Fat,
		dietNote(user),
	)
	return map[string]any{"source": "fallback", "answer": answer}, nil
}

func dietNote(user *models.User) string {
	if user.IsDiabetic {
		return "Prefer low glycemic index foods (GI 55 or below) and spread carbohydrates across meals."
	}
	return "Favour fiber-rich breakfasts and protein-forward main meals."
}
