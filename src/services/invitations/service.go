package invitations

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"survey-api/src/models"
	"survey-api/src/services/invitations/email"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	maxConcurrentSends = 4
	sendTimeout        = 10 * time.Second
)

var (
	ErrSurveyNotFound = errors.New("survey not found")

	validate = validator.New()
)

type Service struct {
	surveys     *mongo.Collection
	invitations *mongo.Collection
	sender      email.MailSender
	baseURL     string
}

func NewInvitationService(db *mongo.Database, sender email.MailSender, baseURL string) *Service {
	return &Service{
		surveys:     db.Collection("surveys"),
		invitations: db.Collection("invitations"),
		sender:      sender,
		baseURL:     baseURL,
	}
}

// Invite ประมวลผลรายชื่ออีเมลหนึ่ง batch:
// ตัดซ้ำ → ข้ามคนที่เชิญไปแล้ว (no-op) → คัดอีเมลผิด format ออก →
// ส่งเมลแบบขนานจำกัดจำนวน → บันทึกเฉพาะคำเชิญที่ส่งเมลสำเร็จ
//
// policy: ส่งเมลไม่สำเร็จ = ไม่สร้าง Invitation row เพื่อไม่ให้มีคำเชิญ
// ค้างอยู่กับอีเมลที่ติดต่อไม่ได้ (จะเชิญซ้ำใหม่ได้ทันที)
func (s *Service) Invite(ctx context.Context, surveyID primitive.ObjectID, emails []string) (*models.InviteResult, error) {
	var survey models.Survey
	if err := s.surveys.FindOne(ctx, bson.M{"_id": surveyID}).Decode(&survey); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrSurveyNotFound
		}
		return nil, err
	}

	distinct := DedupeEmails(emails)

	already, err := s.alreadyInvited(ctx, surveyID, distinct)
	if err != nil {
		return nil, err
	}

	result := &models.InviteResult{
		SentEmails:   []string{},
		FailedEmails: []string{},
	}

	var pending []pendingInvite
	for _, addr := range distinct {
		if already[addr] {
			continue // เชิญไปแล้ว re-invite เป็น no-op
		}
		if !IsValidEmail(addr) {
			result.FailedEmails = append(result.FailedEmails, addr)
			continue
		}
		pending = append(pending, pendingInvite{Email: addr, Token: uuid.NewString()})
	}

	delivered, failed := s.deliverAll(&survey, pending)
	result.FailedEmails = append(result.FailedEmails, failed...)

	if len(delivered) > 0 {
		inserted, err := s.persist(ctx, surveyID, delivered)
		if err != nil {
			return nil, err
		}
		for _, inv := range inserted {
			result.SentEmails = append(result.SentEmails, inv.Email)
		}
		email.ScheduleInvitationReminders(inserted)
	}

	result.SentCount = len(result.SentEmails)
	result.FailedCount = len(result.FailedEmails)
	return result, nil
}

type pendingInvite struct {
	Email string
	Token string
}

// deliverAll ส่งเมลคำเชิญทั้งชุดด้วย worker จำกัด maxConcurrentSends ตัว
// การส่งล้มเหลวหรือ timeout ของอีเมลหนึ่งไม่กระทบอีเมลที่เหลือ
func (s *Service) deliverAll(survey *models.Survey, pending []pendingInvite) (delivered []pendingInvite, failed []string) {
	if len(pending) == 0 {
		return nil, nil
	}

	type sendResult struct {
		invite pendingInvite
		err    error
	}

	results := make(chan sendResult, len(pending))
	sem := make(chan struct{}, maxConcurrentSends)
	var wg sync.WaitGroup

	for _, p := range pending {
		wg.Add(1)
		go func(p pendingInvite) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			results <- sendResult{invite: p, err: s.deliver(survey, p)}
		}(p)
	}
	wg.Wait()
	close(results)

	// อีเมลใน pending ไม่ซ้ำกัน ใช้เป็น key ได้
	errByEmail := make(map[string]error, len(pending))
	for r := range results {
		errByEmail[r.invite.Email] = r.err
	}

	for _, p := range pending {
		if err := errByEmail[p.Email]; err != nil {
			log.Printf("❌ invitation email to %s failed: %v", p.Email, err)
			failed = append(failed, p.Email)
		} else {
			delivered = append(delivered, p)
		}
	}
	return delivered, failed
}

func (s *Service) deliver(survey *models.Survey, p pendingInvite) error {
	if s.sender == nil {
		return errors.New("mail sender not configured")
	}

	html, err := email.RenderInvitationHTML(email.InvitationEmailData{
		SurveyTitle:       survey.Title,
		SurveyDescription: survey.Description,
		SurveyURL:         email.BuildSurveyURL(s.baseURL, p.Token),
	})
	if err != nil {
		return fmt.Errorf("render invitation email: %w", err)
	}

	return email.SendWithTimeout(s.sender, p.Email, email.InvitationSubject(survey.Title), html, sendTimeout)
}

// persist บันทึกคำเชิญที่ส่งสำเร็จทั้งหมดในคำสั่งเดียว
// ถ้าชน unique index (request ขนานเชิญอีเมลเดียวกัน) ถือเป็น no-op ตัวที่เหลือเข้าได้ปกติ
func (s *Service) persist(ctx context.Context, surveyID primitive.ObjectID, delivered []pendingInvite) ([]models.Invitation, error) {
	now := time.Now()

	invs := make([]models.Invitation, 0, len(delivered))
	docs := make([]interface{}, 0, len(delivered))
	for _, p := range delivered {
		inv := models.Invitation{
			ID:          primitive.NewObjectID(),
			SurveyID:    surveyID,
			Email:       p.Email,
			UniqueLink:  p.Token,
			IsSubmitted: false,
			CreatedAt:   now,
		}
		invs = append(invs, inv)
		docs = append(docs, inv)
	}

	_, err := s.invitations.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			log.Println("⚠️ duplicate invitation skipped by unique index:", err)
			return invs, nil
		}
		return nil, fmt.Errorf("failed to insert invitations: %w", err)
	}
	return invs, nil
}

// alreadyInvited คืน set ของอีเมลที่มีคำเชิญของ survey นี้อยู่แล้ว
func (s *Service) alreadyInvited(ctx context.Context, surveyID primitive.ObjectID, emails []string) (map[string]bool, error) {
	if len(emails) == 0 {
		return map[string]bool{}, nil
	}

	cursor, err := s.invitations.Find(ctx,
		bson.M{"surveyId": surveyID, "email": bson.M{"$in": emails}},
		options.Find().SetProjection(bson.M{"email": 1}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Email string `bson:"email"`
	}
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	invited := make(map[string]bool, len(rows))
	for _, r := range rows {
		invited[r.Email] = true
	}
	return invited, nil
}

// DedupeEmails ตัดช่องว่างหัวท้าย ตัดค่าว่าง และตัดซ้ำโดยรักษาลำดับเดิม
func DedupeEmails(emails []string) []string {
	seen := make(map[string]bool, len(emails))
	distinct := make([]string, 0, len(emails))
	for _, addr := range emails {
		addr = strings.TrimSpace(addr)
		if addr == "" || seen[addr] {
			continue
		}
		seen[addr] = true
		distinct = append(distinct, addr)
	}
	return distinct
}

// IsValidEmail ตรวจ format อีเมลด้วย validator
func IsValidEmail(addr string) bool {
	return validate.Var(addr, "required,email") == nil
}
