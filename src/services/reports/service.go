package reports

import (
	"context"
	"errors"
	"math"

	"survey-api/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrSurveyNotFound = errors.New("survey not found")

type Service struct {
	surveys     *mongo.Collection
	invitations *mongo.Collection
	responses   *mongo.Collection
}

func NewReportService(db *mongo.Database) *Service {
	return &Service{
		surveys:     db.Collection("surveys"),
		invitations: db.Collection("invitations"),
		responses:   db.Collection("responses"),
	}
}

// Summary คำนวณรายงานภาพรวมสดจากข้อมูลปัจจุบัน ไม่ cache
func (s *Service) Summary(ctx context.Context, surveyID primitive.ObjectID) (*models.SummaryReport, error) {
	survey, invitations, responses, err := s.load(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	return BuildSummaryReport(survey, invitations, responses), nil
}

// Details รายงานรายคน group ตาม email ของ invitation
func (s *Service) Details(ctx context.Context, surveyID primitive.ObjectID) ([]models.RespondentReport, error) {
	survey, invitations, responses, err := s.load(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	return BuildDetailedReport(survey, invitations, responses), nil
}

func (s *Service) load(ctx context.Context, surveyID primitive.ObjectID) (*models.Survey, []models.Invitation, []models.Response, error) {
	var survey models.Survey
	if err := s.surveys.FindOne(ctx, bson.M{"_id": surveyID}).Decode(&survey); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil, nil, ErrSurveyNotFound
		}
		return nil, nil, nil, err
	}

	cursor, err := s.invitations.Find(ctx, bson.M{"surveyId": surveyID})
	if err != nil {
		return nil, nil, nil, err
	}
	defer cursor.Close(ctx)

	var invitations []models.Invitation
	if err = cursor.All(ctx, &invitations); err != nil {
		return nil, nil, nil, err
	}

	// เรียงตามเวลาตอบ ให้ลำดับใน detailed report คงที่
	opts := options.Find().SetSort(bson.D{{Key: "submittedAt", Value: 1}})
	respCursor, err := s.responses.Find(ctx, bson.M{"surveyId": surveyID}, opts)
	if err != nil {
		return nil, nil, nil, err
	}
	defer respCursor.Close(ctx)

	var responses []models.Response
	if err = respCursor.All(ctx, &responses); err != nil {
		return nil, nil, nil, err
	}

	return &survey, invitations, responses, nil
}

// BuildSummaryReport นับคำตอบต่อ option และคิดเปอร์เซ็นต์ต่อจำนวนคนที่ส่งแล้ว
// ไม่มีคำเชิญหรือยังไม่มีใครส่ง → ค่าเป็น 0 ไม่ใช่ error
func BuildSummaryReport(survey *models.Survey, invitations []models.Invitation, responses []models.Response) *models.SummaryReport {
	totalInvitations := len(invitations)
	totalResponses := 0
	for _, inv := range invitations {
		if inv.IsSubmitted {
			totalResponses++
		}
	}

	responseRate := 0.0
	if totalInvitations > 0 {
		responseRate = round2(float64(totalResponses) * 100.0 / float64(totalInvitations))
	}

	countByOption := make(map[primitive.ObjectID]int, len(responses))
	for _, r := range responses {
		countByOption[r.OptionID]++
	}

	questionReports := make([]models.QuestionReport, 0, len(survey.Questions))
	for _, q := range survey.Questions {
		optReports := make([]models.OptionReport, 0, len(q.Options))
		for _, o := range q.Options {
			count := countByOption[o.ID]
			percentage := 0.0
			if totalResponses > 0 {
				percentage = round2(float64(count) * 100.0 / float64(totalResponses))
			}
			optReports = append(optReports, models.OptionReport{
				OptionID:   o.ID,
				OptionText: o.Text,
				Count:      count,
				Percentage: percentage,
			})
		}
		questionReports = append(questionReports, models.QuestionReport{
			QuestionID:   q.ID,
			QuestionText: q.Text,
			Options:      optReports,
		})
	}

	return &models.SummaryReport{
		SurveyTitle:      survey.Title,
		TotalInvitations: totalInvitations,
		TotalResponses:   totalResponses,
		ResponseRate:     responseRate,
		QuestionReports:  questionReports,
	}
}

// BuildDetailedReport จับคู่ Response → (คำถาม, ตัวเลือกที่ตอบ) แล้ว group ตาม email
// ลำดับ entry ตามอีเมลที่พบก่อนใน responses
func BuildDetailedReport(survey *models.Survey, invitations []models.Invitation, responses []models.Response) []models.RespondentReport {
	questionText := make(map[primitive.ObjectID]string, len(survey.Questions))
	optionText := make(map[primitive.ObjectID]string)
	for _, q := range survey.Questions {
		questionText[q.ID] = q.Text
		for _, o := range q.Options {
			optionText[o.ID] = o.Text
		}
	}

	emailByInvitation := make(map[primitive.ObjectID]string, len(invitations))
	for _, inv := range invitations {
		emailByInvitation[inv.ID] = inv.Email
	}

	reports := []models.RespondentReport{}
	indexByEmail := map[string]int{}

	for _, r := range responses {
		addr, ok := emailByInvitation[r.InvitationID]
		if !ok {
			continue
		}

		idx, ok := indexByEmail[addr]
		if !ok {
			idx = len(reports)
			indexByEmail[addr] = idx
			reports = append(reports, models.RespondentReport{Email: addr, Answers: []models.RespondentAnswer{}})
		}

		reports[idx].Answers = append(reports[idx].Answers, models.RespondentAnswer{
			Question:       questionText[r.QuestionID],
			SelectedOption: optionText[r.OptionID],
		})
	}
	return reports
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
