package db

import (
	"context"
	"log"
	"time"

	"github.com/Nishat-Ahmad/CRITiQUE/internal/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var mongoClient *mongo.Client
var mongoDB *mongo.Database

// InitMongo abre la conexión y deja la DB lista para los repositorios.
// Si Mongo no responde no tiene sentido seguir levantando el API.
func InitMongo(cfg *config.Config) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("❌ Error conectando a Mongo: %v", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("❌ Mongo no responde al ping: %v", err)
	}

	mongoClient = client
	mongoDB = client.Database(cfg.MongoDB)
	log.Printf("✅ Mongo OK (DB=%s)", cfg.MongoDB)
}

// DB devuelve la base activa (users, places, reviews, recommendations).
func DB() *mongo.Database {
	return mongoDB
}

// Disconnect cierra la conexión. Lo usa botfarm al terminar.
func Disconnect(ctx context.Context) {
	if mongoClient == nil {
		return
	}
	if err := mongoClient.Disconnect(ctx); err != nil {
		log.Printf("error cerrando Mongo: %v", err)
	}
}
