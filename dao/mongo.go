package dao

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/campusledger/fees.api/models"
	"github.com/companieshouse/chs.go/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var client *mongo.Client

// ErrInvoiceNotPayable is returned when a paid update matches no unpaid invoice
var ErrInvoiceNotPayable = errors.New("invoice not found or already paid")

// ErrDisputeNotOpen is returned when a resolution matches no open dispute
var ErrDisputeNotOpen = errors.New("dispute not found or already resolved")

// ErrAttemptNotProcessing is returned when a status update matches no processing attempt
var ErrAttemptNotProcessing = errors.New("payment attempt not found or no longer processing")

// ErrAttemptNotUsable is returned when the attempt backing a dispute approval has failed or no longer matches the claim
var ErrAttemptNotUsable = errors.New("payment attempt not found, failed or amount differs")

func getMongoClient(mongoDBURL string) *mongo.Client {
	if client != nil {
		return client
	}

	ctx := context.Background()

	clientOptions := options.Client().ApplyURI(mongoDBURL)
	mongoClient, err := mongo.Connect(ctx, clientOptions)

	// assume the caller of this func would handle the error appropriately
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}

	// check we can connect to the mongodb instance. failure here should result in a crash.
	pingContext, cancel := context.WithDeadline(ctx, time.Now().Add(5*time.Second))
	defer cancel()
	err = mongoClient.Ping(pingContext, nil)
	if err != nil {
		log.Error(errors.New("ping to mongodb timed out. please check the connection to mongodb and that it is running"))
		os.Exit(1)
	}

	log.Info("connected to mongodb successfully")

	client = mongoClient
	return client
}

// MongoDatabaseInterface is an interface that describes the mongodb driver
type MongoDatabaseInterface interface {
	Collection(name string, opts ...*options.CollectionOptions) *mongo.Collection
	Client() *mongo.Client
}

func getMongoDatabase(mongoDBURL, databaseName string) MongoDatabaseInterface {
	return getMongoClient(mongoDBURL).Database(databaseName)
}

// MongoService is an implementation of the DAO interface using MongoDB as the backend driver.
type MongoService struct {
	db                 MongoDatabaseInterface
	InvoicesCollection string
	AttemptsCollection string
	DisputesCollection string
}

// CreateInvoice writes a new invoice to the DB
func (m *MongoService) CreateInvoice(invoice *models.InvoiceDB) error {
	collection := m.db.Collection(m.InvoicesCollection)
	_, err := collection.InsertOne(context.Background(), invoice)
	return err
}

// GetInvoice gets an invoice from the DB.
// If the invoice is not found in the tenant, return nil
func (m *MongoService) GetInvoice(tenantID, id string) (*models.InvoiceDB, error) {
	var resource models.InvoiceDB

	collection := m.db.Collection(m.InvoicesCollection)
	dbResource := collection.FindOne(context.Background(), bson.M{"_id": id, "tenant_id": tenantID})

	err := dbResource.Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			log.Debug("no invoice found for id", log.Data{"id": id, "tenant_id": tenantID})
			return nil, nil
		}
		log.Error(err, log.Data{"id": id})
		return nil, err
	}

	err = dbResource.Decode(&resource)
	if err != nil {
		log.Error(err, log.Data{"id": id})
		return nil, err
	}

	return &resource, nil
}

// GetInvoices lists the invoices of a tenant, newest due date first
func (m *MongoService) GetInvoices(tenantID string, filter models.InvoiceFilter) ([]models.InvoiceDB, error) {
	query := bson.M{"tenant_id": tenantID}
	if filter.StudentID != "" {
		query["student_id"] = filter.StudentID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.AcademicYear != "" {
		query["academic_year"] = filter.AcademicYear
	}
	if !filter.IncludeArchived {
		query["archived"] = bson.M{"$ne": true}
	}

	collection := m.db.Collection(m.InvoicesCollection)
	findOptions := options.Find().SetSort(bson.D{{Key: "due_date", Value: -1}})

	cursor, err := collection.Find(context.Background(), query, findOptions)
	if err != nil {
		return nil, err
	}

	invoices := []models.InvoiceDB{}
	if err = cursor.All(context.Background(), &invoices); err != nil {
		return nil, err
	}

	return invoices, nil
}

// MarkInvoicePaid sets an unpaid invoice to paid. An invoice that is
// already paid is never overwritten, so the first payment path wins.
func (m *MongoService) MarkInvoicePaid(tenantID, id string, paidAmount int64, paidVia string, paidAt time.Time) error {
	collection := m.db.Collection(m.InvoicesCollection)
	return markInvoicePaid(context.Background(), collection, tenantID, id, paidAmount, paidVia, paidAt)
}

func markInvoicePaid(ctx context.Context, collection *mongo.Collection, tenantID, id string, paidAmount int64, paidVia string, paidAt time.Time) error {
	filter := bson.M{
		"_id":       id,
		"tenant_id": tenantID,
		"status":    bson.M{"$ne": models.InvoicePaid},
	}
	update := bson.M{"$set": bson.M{
		"status":      models.InvoicePaid,
		"paid_amount": paidAmount,
		"paid_at":     paidAt,
		"paid_via":    paidVia,
	}}

	result, err := collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrInvoiceNotPayable
	}
	return nil
}

// ArchiveInvoices archives every invoice of an academic year at rollover
func (m *MongoService) ArchiveInvoices(tenantID, academicYear string) (int64, error) {
	collection := m.db.Collection(m.InvoicesCollection)

	filter := bson.M{"tenant_id": tenantID, "academic_year": academicYear, "archived": bson.M{"$ne": true}}
	result, err := collection.UpdateMany(context.Background(), filter, bson.M{"$set": bson.M{"archived": true}})
	if err != nil {
		return 0, fmt.Errorf("error archiving invoices for academic year [%s]: %v", academicYear, err)
	}

	return result.ModifiedCount, nil
}

// CreatePaymentAttempt writes a new payment attempt to the DB
func (m *MongoService) CreatePaymentAttempt(attempt *models.PaymentAttemptDB) error {
	collection := m.db.Collection(m.AttemptsCollection)
	_, err := collection.InsertOne(context.Background(), attempt)
	return err
}

// GetPaymentAttempt gets a payment attempt of a tenant from the DB.
// If the attempt is not found, return nil
func (m *MongoService) GetPaymentAttempt(tenantID, id string) (*models.PaymentAttemptDB, error) {
	return m.findPaymentAttempt(bson.M{"_id": id, "tenant_id": tenantID})
}

// GetPaymentAttemptByID gets a payment attempt regardless of tenant. It is
// only used for gateway callbacks, which carry no tenant credentials.
func (m *MongoService) GetPaymentAttemptByID(id string) (*models.PaymentAttemptDB, error) {
	return m.findPaymentAttempt(bson.M{"_id": id})
}

// GetPaymentAttemptByTransactionID gets the attempt on an invoice with the given gateway transaction id
func (m *MongoService) GetPaymentAttemptByTransactionID(tenantID, invoiceID, transactionID string) (*models.PaymentAttemptDB, error) {
	return m.findPaymentAttempt(bson.M{
		"tenant_id":              tenantID,
		"invoice_id":             invoiceID,
		"gateway_transaction_id": transactionID,
	})
}

func (m *MongoService) findPaymentAttempt(filter bson.M) (*models.PaymentAttemptDB, error) {
	var resource models.PaymentAttemptDB

	collection := m.db.Collection(m.AttemptsCollection)
	dbResource := collection.FindOne(context.Background(), filter)

	err := dbResource.Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		log.Error(err, log.Data{"filter": filter})
		return nil, err
	}

	err = dbResource.Decode(&resource)
	if err != nil {
		log.Error(err, log.Data{"filter": filter})
		return nil, err
	}

	return &resource, nil
}

// UpdatePaymentAttemptStatus moves a processing attempt to a terminal status
func (m *MongoService) UpdatePaymentAttemptStatus(tenantID, id, status string, completedAt time.Time) error {
	collection := m.db.Collection(m.AttemptsCollection)

	filter := bson.M{"_id": id, "tenant_id": tenantID, "status": models.AttemptProcessing}
	update := bson.M{"$set": bson.M{"status": status, "completed_at": completedAt}}

	result, err := collection.UpdateOne(context.Background(), filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrAttemptNotProcessing
	}
	return nil
}

// GetStuckPaymentAttempts gets the processing attempts created before the cutoff.
// An empty tenantID searches across every tenant.
func (m *MongoService) GetStuckPaymentAttempts(tenantID string, cutoff time.Time) ([]models.PaymentAttemptDB, error) {
	filter := bson.M{
		"status":     models.AttemptProcessing,
		"created_at": bson.M{"$lt": cutoff},
	}
	if tenantID != "" {
		filter["tenant_id"] = tenantID
	}

	collection := m.db.Collection(m.AttemptsCollection)
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})

	cursor, err := collection.Find(context.Background(), filter, findOptions)
	if err != nil {
		return nil, err
	}

	attempts := []models.PaymentAttemptDB{}
	if err = cursor.All(context.Background(), &attempts); err != nil {
		return nil, err
	}

	return attempts, nil
}

// GetDailyCollections sums successful payment attempts per completion day in [from, to)
func (m *MongoService) GetDailyCollections(tenantID string, from, to time.Time) ([]models.DailyCollectionDB, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{
			{Key: "tenant_id", Value: tenantID},
			{Key: "status", Value: models.AttemptSuccess},
			{Key: "completed_at", Value: bson.D{{Key: "$gte", Value: from}, {Key: "$lt", Value: to}}},
		}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{{Key: "$dateToString", Value: bson.D{
				{Key: "format", Value: "%Y-%m-%d"},
				{Key: "date", Value: "$completed_at"},
			}}}},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$amount"}}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}

	collection := m.db.Collection(m.AttemptsCollection)
	cursor, err := collection.Aggregate(context.Background(), pipeline)
	if err != nil {
		return nil, err
	}

	days := []models.DailyCollectionDB{}
	if err = cursor.All(context.Background(), &days); err != nil {
		return nil, err
	}

	return days, nil
}

// CreateDispute writes a new dispute to the DB
func (m *MongoService) CreateDispute(dispute *models.DisputeDB) error {
	collection := m.db.Collection(m.DisputesCollection)
	_, err := collection.InsertOne(context.Background(), dispute)
	return err
}

// GetDispute gets a dispute from the DB.
// If the dispute is not found in the tenant, return nil
func (m *MongoService) GetDispute(tenantID, id string) (*models.DisputeDB, error) {
	var resource models.DisputeDB

	collection := m.db.Collection(m.DisputesCollection)
	dbResource := collection.FindOne(context.Background(), bson.M{"_id": id, "tenant_id": tenantID})

	err := dbResource.Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		log.Error(err, log.Data{"id": id})
		return nil, err
	}

	err = dbResource.Decode(&resource)
	if err != nil {
		log.Error(err, log.Data{"id": id})
		return nil, err
	}

	return &resource, nil
}

// GetDisputes lists the disputes of a tenant, oldest first, optionally by status
func (m *MongoService) GetDisputes(tenantID, status string) ([]models.DisputeDB, error) {
	filter := bson.M{"tenant_id": tenantID}
	if status != "" {
		filter["status"] = status
	}

	collection := m.db.Collection(m.DisputesCollection)
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})

	cursor, err := collection.Find(context.Background(), filter, findOptions)
	if err != nil {
		return nil, err
	}

	disputes := []models.DisputeDB{}
	if err = cursor.All(context.Background(), &disputes); err != nil {
		return nil, err
	}

	return disputes, nil
}

// ResolveDispute closes an open dispute. For an approval the invoice is marked
// paid and the matched attempt succeeded in the same transaction, so the
// dispute and invoice are never left disagreeing.
func (m *MongoService) ResolveDispute(tenantID, id string, resolution models.DisputeResolutionDB) error {
	ctx := context.Background()

	session, err := m.db.Client().StartSession()
	if err != nil {
		return fmt.Errorf("error starting mongo session: %v", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		return nil, m.applyResolution(sessCtx, tenantID, id, resolution)
	})

	return err
}

func (m *MongoService) applyResolution(ctx context.Context, tenantID, id string, resolution models.DisputeResolutionDB) error {
	disputeUpdate := bson.M{
		"status":      resolution.Status,
		"admin_note":  resolution.AdminNote,
		"resolved_by": resolution.ResolvedBy,
		"resolved_at": resolution.ResolvedAt,
	}
	if resolution.PaymentAttemptID != "" {
		disputeUpdate["payment_attempt_id"] = resolution.PaymentAttemptID
	}

	disputes := m.db.Collection(m.DisputesCollection)
	result, err := disputes.UpdateOne(ctx,
		bson.M{"_id": id, "tenant_id": tenantID, "status": models.DisputeOpen},
		bson.M{"$set": disputeUpdate})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrDisputeNotOpen
	}

	if resolution.Status != models.DisputeApproved {
		return nil
	}

	invoices := m.db.Collection(m.InvoicesCollection)
	err = markInvoicePaid(ctx, invoices, tenantID, resolution.InvoiceID, resolution.PaidAmount, models.PaidViaDispute, resolution.ResolvedAt)
	if err != nil {
		return err
	}

	if resolution.PaymentAttemptID == "" {
		return nil
	}

	// the attempt may have failed since it was matched; that aborts the whole approval
	attempts := m.db.Collection(m.AttemptsCollection)
	result, err = attempts.UpdateOne(ctx,
		bson.M{
			"_id":       resolution.PaymentAttemptID,
			"tenant_id": tenantID,
			"status":    bson.M{"$ne": models.AttemptFailed},
			"amount":    resolution.PaidAmount,
		},
		bson.M{"$set": bson.M{"status": models.AttemptSuccess, "completed_at": resolution.ResolvedAt}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrAttemptNotUsable
	}

	return nil
}
