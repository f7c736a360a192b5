package surveys

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"survey-api/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	minOptionsPerQuestion = 2
	maxOptionsPerQuestion = 5
)

var (
	ErrInvalidSurvey  = errors.New("invalid survey")
	ErrSurveyNotFound = errors.New("survey not found")
)

type Service struct {
	surveys     *mongo.Collection
	invitations *mongo.Collection
}

func NewSurveyService(db *mongo.Database) *Service {
	return &Service{
		surveys:     db.Collection("surveys"),
		invitations: db.Collection("invitations"),
	}
}

// Create ตรวจสอบและบันทึก survey ทั้งกราฟในเอกสารเดียว
// ถ้า validation ข้อใดไม่ผ่าน จะไม่มีการเขียนอะไรลงฐานข้อมูลเลย
func (s *Service) Create(ctx context.Context, req *models.CreateSurveyRequest) (*models.Survey, error) {
	questions, err := ValidateQuestions(req.Questions)
	if err != nil {
		return nil, err
	}

	survey := &models.Survey{
		ID:          primitive.NewObjectID(),
		Title:       req.Title,
		Description: req.Description,
		Questions:   questions,
	}

	if _, err := s.surveys.InsertOne(ctx, survey); err != nil {
		return nil, fmt.Errorf("failed to insert survey: %w", err)
	}
	return survey, nil
}

// GetByID ดึง survey พร้อม questions/options
func (s *Service) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Survey, error) {
	var survey models.Survey
	err := s.surveys.FindOne(ctx, bson.M{"_id": id}).Decode(&survey)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrSurveyNotFound
		}
		return nil, err
	}
	return &survey, nil
}

// List ดึง survey ทั้งหมดพร้อมจำนวนคำเชิญและจำนวนที่ตอบแล้ว
func (s *Service) List(ctx context.Context) ([]models.SurveyListItem, error) {
	cursor, err := s.surveys.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var all []models.Survey
	if err = cursor.All(ctx, &all); err != nil {
		return nil, err
	}

	counts, err := s.invitationCounts(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]models.SurveyListItem, 0, len(all))
	for _, sv := range all {
		c := counts[sv.ID]
		items = append(items, models.SurveyListItem{
			ID:              sv.ID,
			Title:           sv.Title,
			Description:     sv.Description,
			InvitationCount: c.total,
			SubmittedCount:  c.submitted,
		})
	}
	return items, nil
}

type inviteCount struct {
	total     int64
	submitted int64
}

// invitationCounts นับคำเชิญต่อ survey ด้วย aggregation ครั้งเดียว
func (s *Service) invitationCounts(ctx context.Context) (map[primitive.ObjectID]inviteCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   "$surveyId",
			"total": bson.M{"$sum": 1},
			"submitted": bson.M{"$sum": bson.M{
				"$cond": bson.A{"$isSubmitted", 1, 0},
			}},
		}}},
	}

	cursor, err := s.invitations.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		SurveyID  primitive.ObjectID `bson:"_id"`
		Total     int64              `bson:"total"`
		Submitted int64              `bson:"submitted"`
	}
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	counts := make(map[primitive.ObjectID]inviteCount, len(rows))
	for _, r := range rows {
		counts[r.SurveyID] = inviteCount{total: r.Total, submitted: r.Submitted}
	}
	return counts, nil
}

// ValidateQuestions ใช้กติกาตามลำดับ:
//  1. ต้องมีอย่างน้อย 1 คำถาม
//  2. แต่ละคำถามต้องส่ง option มา 2-5 ตัว
//  3. ตัด option ที่ text ว่าง/มีแต่ช่องว่างทิ้ง
//  4. หลังตัดแล้วต้องเหลืออย่างน้อย 2 ตัว
//
// ผ่านครบทุกข้อจึงจะสร้าง Question พร้อม ObjectID ให้
func ValidateQuestions(reqs []models.CreateQuestionRequest) ([]models.Question, error) {
	if len(reqs) == 0 {
		return nil, fmt.Errorf("%w: survey must have at least one question", ErrInvalidSurvey)
	}

	questions := make([]models.Question, 0, len(reqs))
	for _, q := range reqs {
		if len(q.Options) < minOptionsPerQuestion || len(q.Options) > maxOptionsPerQuestion {
			return nil, fmt.Errorf("%w: question '%s' must have %d to %d options",
				ErrInvalidSurvey, q.Text, minOptionsPerQuestion, maxOptionsPerQuestion)
		}

		options := make([]models.Option, 0, len(q.Options))
		for _, opt := range q.Options {
			if strings.TrimSpace(opt.Text) == "" {
				continue
			}
			options = append(options, models.Option{
				ID:   primitive.NewObjectID(),
				Text: opt.Text,
			})
		}

		if len(options) < minOptionsPerQuestion {
			return nil, fmt.Errorf("%w: question '%s' must have at least %d options with text",
				ErrInvalidSurvey, q.Text, minOptionsPerQuestion)
		}

		questions = append(questions, models.Question{
			ID:      primitive.NewObjectID(),
			Text:    q.Text,
			Options: options,
		})
	}
	return questions, nil
}
