package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/meetyhq/MeetyBooker/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const meetingsCollection = "meetings"

// MongoStore implements the meeting store on MongoDB, the document-store
// sibling of the Postgres backend. Records are keyed by meeting id in _id;
// paged queries use the same "date|meeting_id" keyset cursors.
type MongoStore struct {
	coll *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{coll: db.Collection(meetingsCollection)}
}

// EnsureIndexes creates the compound index backing the status queries.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "status", Value: 1},
			{Key: "date", Value: 1},
			{Key: "_id", Value: 1},
		},
	})
	if err != nil {
		return fmt.Errorf("create meetings index: %w", err)
	}
	return nil
}

func (s *MongoStore) Put(ctx context.Context, m *domain.Meeting) error {
	filter := bson.M{"_id": m.MeetingID}
	_, err := s.coll.ReplaceOne(ctx, filter, m, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert meeting: %w", err)
	}
	return nil
}

func (s *MongoStore) QueryByStatusAndDate(ctx context.Context, status domain.MeetingStatus, date string) ([]*domain.Meeting, error) {
	filter := bson.M{"status": status, "date": date}
	opts := options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}})

	cur, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("query meetings by status and date: %w", err)
	}

	return decodeMeetings(ctx, cur)
}

func (s *MongoStore) QueryByStatusAndDateRange(ctx context.Context, status domain.MeetingStatus, startDate, endDate, cursor string, limit int) ([]*domain.Meeting, string, error) {
	filter := bson.M{
		"status": status,
		"date":   bson.M{"$gte": startDate, "$lte": endDate},
	}
	if err := applyCursor(filter, cursor); err != nil {
		return nil, "", err
	}

	res, err := s.findPage(ctx, filter, limit)
	if err != nil {
		return nil, "", fmt.Errorf("query meetings by status and date range: %w", err)
	}

	return res, nextCursor(res, limit), nil
}

func (s *MongoStore) QueryByStatus(ctx context.Context, status domain.MeetingStatus, cursor string, limit int) ([]*domain.Meeting, string, error) {
	filter := bson.M{"status": status}
	if err := applyCursor(filter, cursor); err != nil {
		return nil, "", err
	}

	res, err := s.findPage(ctx, filter, limit)
	if err != nil {
		return nil, "", fmt.Errorf("query meetings by status: %w", err)
	}

	return res, nextCursor(res, limit), nil
}

func (s *MongoStore) UpdateStatus(ctx context.Context, meetingID string, status domain.MeetingStatus) (*domain.Meeting, error) {
	filter := bson.M{"_id": meetingID, "status": domain.StatusPending}
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now().UTC()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var m domain.Meeting
	err := s.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&m)
	if err == nil {
		return &m, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("update meeting status: %w", err)
	}

	// No document matched: missing id or already decided.
	err = s.coll.FindOne(ctx, bson.M{"_id": meetingID}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrMeetingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("check meeting: %w", err)
	}

	return nil, domain.ErrMeetingNotPending
}

func (s *MongoStore) findPage(ctx context.Context, filter bson.M, limit int) ([]*domain.Meeting, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: 1}, {Key: "_id", Value: 1}}).
		SetLimit(int64(limit))

	cur, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	return decodeMeetings(ctx, cur)
}

// applyCursor narrows filter to documents strictly after the keyset cursor
// in (date, _id) order.
func applyCursor(filter bson.M, cursor string) error {
	afterDate, afterID, err := decodeCursor(cursor)
	if err != nil {
		return err
	}
	if cursor == "" {
		return nil
	}

	filter["$or"] = bson.A{
		bson.M{"date": bson.M{"$gt": afterDate}},
		bson.M{"date": afterDate, "_id": bson.M{"$gt": afterID}},
	}
	return nil
}

func decodeMeetings(ctx context.Context, cur *mongo.Cursor) ([]*domain.Meeting, error) {
	defer cur.Close(ctx)

	var res []*domain.Meeting
	for cur.Next(ctx) {
		var m domain.Meeting
		if err := cur.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode meeting: %w", err)
		}
		res = append(res, &m)
	}

	return res, cur.Err()
}
