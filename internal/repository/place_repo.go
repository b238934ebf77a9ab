package repository

import (
	"context"

	"github.com/Nishat-Ahmad/CRITiQUE/internal/db"
	"github.com/Nishat-Ahmad/CRITiQUE/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PlaceRepository struct {
	col *mongo.Collection
}

func NewPlaceRepository() *PlaceRepository {
	return &PlaceRepository{col: db.DB().Collection("places")}
}

func (r *PlaceRepository) GetByID(ctx context.Context, placeID int) (*models.PlaceDoc, error) {
	var p models.PlaceDoc
	err := r.col.FindOne(ctx, bson.M{"placeId": placeID}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &p, err
}

func (r *PlaceRepository) GetNextPlaceID(ctx context.Context) (int, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "placeId", Value: -1}})
	var p models.PlaceDoc
	err := r.col.FindOne(ctx, bson.M{}, opts).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	return p.PlaceID + 1, nil
}

func (r *PlaceRepository) Insert(ctx context.Context, p *models.PlaceDoc) error {
	_, err := r.col.InsertOne(ctx, p)
	return err
}

func (r *PlaceRepository) Update(ctx context.Context, p *models.PlaceDoc) error {
	_, err := r.col.ReplaceOne(ctx, bson.M{"placeId": p.PlaceID}, p)
	return err
}

func (r *PlaceRepository) Delete(ctx context.Context, placeID int) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"placeId": placeID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// GetAll trae el snapshot completo del catálogo (lo usa el recomendador
// y el home). El catálogo de un campus es chico, no hace falta paginar.
func (r *PlaceRepository) GetAll(ctx context.Context) ([]models.PlaceDoc, error) {
	opts := options.Find().SetSort(bson.D{{Key: "placeId", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.PlaceDoc
	for cur.Next(ctx) {
		var p models.PlaceDoc
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, cur.Err()
}

func (r *PlaceRepository) Search(
	ctx context.Context,
	q string,
	typ string,
	tag string,
	limit, offset int,
) ([]models.PlaceDoc, error) {

	filter := bson.M{}

	if q != "" {
		filter["name"] = bson.M{"$regex": q, "$options": "i"}
	}
	if typ != "" {
		filter["type"] = typ
	}
	if tag != "" {
		// tags es un string separado por comas, busca el tag como substring
		filter["tags"] = bson.M{"$regex": tag, "$options": "i"}
	}

	opts := options.Find().
		SetLimit(int64(limit)).
		SetSkip(int64(offset))

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.PlaceDoc
	for cur.Next(ctx) {
		var p models.PlaceDoc
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, cur.Err()
}

// Top por popularidad (count) o rating promedio
func (r *PlaceRepository) Top(ctx context.Context, metric string, limit int) ([]models.PlaceDoc, error) {
	sortField := "ratingStats.count" // popular
	if metric == "rating" {
		sortField = "ratingStats.average"
	}

	opts := options.Find().
		SetSort(bson.D{{Key: sortField, Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.PlaceDoc
	for cur.Next(ctx) {
		var p models.PlaceDoc
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, cur.Err()
}
