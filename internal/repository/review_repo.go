package repository

import (
	"context"

	"github.com/Nishat-Ahmad/CRITiQUE/internal/db"
	"github.com/Nishat-Ahmad/CRITiQUE/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ReviewRepository struct {
	col *mongo.Collection
}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{col: db.DB().Collection("reviews")}
}

func (r *ReviewRepository) GetNextReviewID(ctx context.Context) (int, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "reviewId", Value: -1}})
	var rv models.ReviewDoc
	err := r.col.FindOne(ctx, bson.M{}, opts).Decode(&rv)
	if err == mongo.ErrNoDocuments {
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	return rv.ReviewID + 1, nil
}

func (r *ReviewRepository) Insert(ctx context.Context, rv *models.ReviewDoc) error {
	_, err := r.col.InsertOne(ctx, rv)
	return err
}

func (r *ReviewRepository) GetByID(ctx context.Context, reviewID int) (*models.ReviewDoc, error) {
	var rv models.ReviewDoc
	err := r.col.FindOne(ctx, bson.M{"reviewId": reviewID}).Decode(&rv)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &rv, err
}

// UpdateByID aplica un $set parcial (texto/rating editados por el autor).
func (r *ReviewRepository) UpdateByID(ctx context.Context, reviewID int, update bson.M) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"reviewId": reviewID},
		bson.M{"$set": update},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *ReviewRepository) Delete(ctx context.Context, reviewID int) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"reviewId": reviewID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// DeleteByPlace borra todas las reviews de un lugar (cascada al borrar
// el lugar) y devuelve las borradas para ajustar contadores de autores.
func (r *ReviewRepository) DeleteByPlace(ctx context.Context, placeID int) ([]models.ReviewDoc, error) {
	reviews, err := r.GetByPlace(ctx, placeID)
	if err != nil {
		return nil, err
	}
	if _, err := r.col.DeleteMany(ctx, bson.M{"placeId": placeID}); err != nil {
		return nil, err
	}
	return reviews, nil
}

// GetByPlace: reviews de un lugar, más recientes primero.
func (r *ReviewRepository) GetByPlace(ctx context.Context, placeID int) ([]models.ReviewDoc, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"placeId": placeID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.ReviewDoc
	for cur.Next(ctx) {
		var rv models.ReviewDoc
		if err := cur.Decode(&rv); err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	return out, cur.Err()
}

func (r *ReviewRepository) GetByUser(ctx context.Context, userID string, limit, offset int) ([]models.ReviewDoc, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit)).
		SetSkip(int64(offset))

	cur, err := r.col.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.ReviewDoc
	for cur.Next(ctx) {
		var rv models.ReviewDoc
		if err := cur.Decode(&rv); err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	return out, cur.Err()
}

// GetAll trae TODAS las reviews ordenadas por creación ascendente: es el
// snapshot que consume el recomendador (el orden importa, ante ratings
// duplicados del mismo par user/place gana el último).
func (r *ReviewRepository) GetAll(ctx context.Context) ([]models.ReviewDoc, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.ReviewDoc
	for cur.Next(ctx) {
		var rv models.ReviewDoc
		if err := cur.Decode(&rv); err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	return out, cur.Err()
}

// ====== Agregaciones para el dashboard ======

// CountSince cuenta reviews creadas desde un epoch ms.
func (r *ReviewRepository) CountSince(ctx context.Context, sinceMs int64) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"createdAt": bson.M{"$gte": sinceMs}})
}

func (r *ReviewRepository) CountInRange(ctx context.Context, fromMs, toMs int64) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{
		"createdAt": bson.M{"$gte": fromMs, "$lt": toMs},
	})
}

func (r *ReviewRepository) CountTotal(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

// CountStarOnly: reviews sin texto (solo estrellas).
func (r *ReviewRepository) CountStarOnly(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"$or": []bson.M{
		{"text": bson.M{"$exists": false}},
		{"text": ""},
	}})
}

// DistinctUsersSince: autores distintos desde un epoch ms.
func (r *ReviewRepository) DistinctUsersSince(ctx context.Context, sinceMs int64) (int, error) {
	vals, err := r.col.Distinct(ctx, "userId", bson.M{"createdAt": bson.M{"$gte": sinceMs}})
	if err != nil {
		return 0, err
	}
	return len(vals), nil
}

// AverageRatingPerPlace agrupa por lugar: promedio + cantidad, ordenado
// por cantidad de reviews descendente.
func (r *ReviewRepository) AverageRatingPerPlace(ctx context.Context) ([]models.PlaceRatingRow, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":       "$placeId",
			"avgRating": bson.M{"$avg": "$rating"},
			"count":     bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.PlaceRatingRow
	for cur.Next(ctx) {
		var row struct {
			PlaceID   int     `bson:"_id"`
			AvgRating float64 `bson:"avgRating"`
			Count     int     `bson:"count"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, err
		}
		out = append(out, models.PlaceRatingRow{
			PlaceID:   row.PlaceID,
			AvgRating: row.AvgRating,
			Count:     row.Count,
		})
	}
	return out, cur.Err()
}
