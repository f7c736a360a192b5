package database

import (
	"log"
	"os"

	"github.com/hibiken/asynq"
)

var AsynqClient *asynq.Client

// InitAsynq initializes Asynq client only if Redis is available
func InitAsynq() {
	if RedisClient == nil || RedisURI == "" {
		log.Println("⚠️ Redis not available. Asynq client will not be initialized.")
		return
	}

	AsynqClient = asynq.NewClient(asynq.RedisClientOpt{
		Addr:     RedisURI,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	log.Println("✅ Asynq Client initialized successfully")
}
