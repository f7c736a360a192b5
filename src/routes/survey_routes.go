package routes

import (
	"log"

	"survey-api/src/controllers"
	"survey-api/src/middleware"
	"survey-api/src/services/invitations"
	"survey-api/src/services/invitations/email"
	"survey-api/src/services/reports"
	"survey-api/src/services/responses"
	"survey-api/src/services/surveys"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
)

// SurveyRoutes กำหนดเส้นทางของ survey ทั้งฝั่ง operator และฝั่งผู้ตอบ
func SurveyRoutes(app *fiber.App, db *mongo.Database) {
	sender, err := email.NewSMTPSenderFromEnv()
	if err != nil {
		// ไม่มี SMTP → การเชิญจะ fail รายอีเมล แต่ส่วนอื่นใช้งานได้
		log.Println("⚠️ SMTP not configured:", err)
	}

	surveyCtrl := controllers.NewSurveyController(surveys.NewSurveyService(db))
	invCtrl := controllers.NewInvitationController(
		invitations.NewInvitationService(db, senderOrNil(sender), email.BaseURLFromEnv()))
	respCtrl := controllers.NewResponseController(responses.NewResponseService(db))
	reportCtrl := controllers.NewReportController(reports.NewReportService(db))

	g := app.Group("/surveys")

	// ฝั่งผู้ตอบ เปิด public ผ่าน unique link
	// ต้องมาก่อน /:id ไม่งั้น "respond" โดนตีความเป็น id
	g.Get("/respond/:token", respCtrl.GetSurveyForResponse)
	g.Post("/respond/:token", respCtrl.SubmitResponse)

	// ฝั่ง operator
	g.Post("/", middleware.AuthJWT, surveyCtrl.CreateSurvey)
	g.Get("/", middleware.AuthJWT, surveyCtrl.GetSurveys)
	g.Get("/:id", surveyCtrl.GetSurveyByID)
	g.Post("/:id/invitations", middleware.AuthJWT, invCtrl.InviteRespondents)
	g.Get("/:id/report", middleware.AuthJWT, reportCtrl.GetSummaryReport)
	g.Get("/:id/report/details", middleware.AuthJWT, reportCtrl.GetDetailedReport)
}

// senderOrNil กัน interface ห่อ nil pointer
func senderOrNil(s *email.SMTPSender) email.MailSender {
	if s == nil {
		return nil
	}
	return s
}
