package database

import (
	"context"
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	client     *mongo.Client
	once       sync.Once // ✅ ป้องกันการรัน ConnectMongoDB() ซ้ำ
	connectErr error

	dbName = "SurveyDB"
)

// ConnectMongoDB เชื่อมต่อกับ MongoDB แค่ครั้งเดียว
func ConnectMongoDB() error {

	// โหลดค่า Environment Variables จากไฟล์ .env
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Warning: No .env file found")
	}

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("❌ MONGO_URI environment variable not set. Please create a .env file and set it.")
	}
	if name := os.Getenv("MONGO_DB"); name != "" {
		dbName = name
	}

	once.Do(func() { // ✅ Run only once
		clientOptions := options.Client().ApplyURI(mongoURI)

		client, connectErr = mongo.Connect(context.TODO(), clientOptions)
		if connectErr != nil {
			log.Fatal("❌ Failed to connect to MongoDB:", connectErr)
			return
		}

		connectErr = client.Ping(context.TODO(), readpref.Primary())
		if connectErr != nil {
			log.Fatal("❌ MongoDB ping failed:", connectErr)
			return
		}

		log.Println("✅ MongoDB connected successfully")
	})

	return connectErr
}

// GetDatabase คืน database หลักของแอป
func GetDatabase() *mongo.Database {
	if client == nil {
		log.Fatal("❌ MongoDB client is nil")
	}
	return client.Database(dbName)
}

// GetCollection รับ Collection จาก MongoDB
func GetCollection(collectionName string) *mongo.Collection {
	return GetDatabase().Collection(collectionName)
}

// EnsureIndexes สร้าง unique index ที่ invariant ของระบบต้องพึ่ง
//   - invitations (surveyId, email) กันการเชิญซ้ำแม้ request จะยิงพร้อมกัน
//   - invitations uniqueLink กัน token ชนกัน
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	invitations := db.Collection("invitations")

	_, err := invitations.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "surveyId", Value: 1}, {Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_survey_email"),
		},
		{
			Keys:    bson.D{{Key: "uniqueLink", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_link"),
		},
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("responses").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "surveyId", Value: 1}},
	})
	if err != nil {
		return err
	}

	log.Println("✅ MongoDB indexes ensured")
	return nil
}
