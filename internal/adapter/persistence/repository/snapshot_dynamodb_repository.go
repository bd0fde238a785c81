package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"slices"
	"time"

	"marcenaria_gestao/internal/domain/entities"
	"marcenaria_gestao/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	// BatchWriteItem accepts at most 25 requests per call.
	maxBatchWrite   = 25
	maxBatchRetries = 5
)

var snapshotCollections = []entities.Collection{
	entities.CollectionRequests,
	entities.CollectionProjects,
	entities.CollectionTeams,
	entities.CollectionVehicles,
	entities.CollectionSupplyOrders,
	entities.CollectionLogisticsEvents,
}

type snapshotItem struct {
	Collection string `dynamodbav:"collection"`
	ID         string `dynamodbav:"id"`
	Position   int    `dynamodbav:"position"`
	Payload    string `dynamodbav:"payload"`
	SavedAt    string `dynamodbav:"saved_at"`
}

// SnapshotAPI is the subset of the DynamoDB client used for snapshots.
type SnapshotAPI interface {
	dynamodb.QueryAPIClient
	BatchWriteItem(ctx context.Context, params *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error)
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

// SnapshotDynamoRepository persists the entity store content in DynamoDB.
//
// Table requirements:
//   - PK: collection (string)
//   - SK: id (string)
//
// One item per entity. payload holds the entity JSON and position keeps the
// newest-first order of the collection.
type SnapshotDynamoRepository struct {
	ddb       SnapshotAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.ISnapshotRepository = (*SnapshotDynamoRepository)(nil)

func NewSnapshotDynamoRepository(ddb SnapshotAPI, tableName string) *SnapshotDynamoRepository {
	return &SnapshotDynamoRepository{ddb: ddb, tableName: tableName, now: time.Now}
}

// EnsureTable creates the snapshots table when it does not exist yet. Meant
// for local DynamoDB; production tables are provisioned outside the service.
func (r *SnapshotDynamoRepository) EnsureTable(ctx context.Context) error {
	_, err := r.ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(r.tableName)})
	if err == nil {
		return nil
	}
	var notFound *types.ResourceNotFoundException
	if !errors.As(err, &notFound) {
		return err
	}

	log.Printf("[snapshot][repository] creating table name=%s", r.tableName)
	_, err = r.ddb.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName:   aws.String(r.tableName),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("collection"), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("collection"), KeyType: types.KeyTypeHash},
			{AttributeName: aws.String("id"), KeyType: types.KeyTypeRange},
		},
	})
	var inUse *types.ResourceInUseException
	if errors.As(err, &inUse) {
		return nil
	}
	return err
}

// Save writes every entity of snap and removes items of entities that are
// no longer in the store.
func (r *SnapshotDynamoRepository) Save(ctx context.Context, snap entities.Snapshot) error {
	items, err := toSnapshotItems(snap, r.now().UTC())
	if err != nil {
		return err
	}

	keep := make(map[string]bool, len(items))
	writes := make([]types.WriteRequest, 0, len(items))
	for _, it := range items {
		av, err := attributevalue.MarshalMap(it)
		if err != nil {
			return err
		}
		keep[it.Collection+"/"+it.ID] = true
		writes = append(writes, types.WriteRequest{PutRequest: &types.PutRequest{Item: av}})
	}

	for _, c := range snapshotCollections {
		stored, err := r.queryCollection(ctx, c, true)
		if err != nil {
			return err
		}
		for _, it := range stored {
			if keep[it.Collection+"/"+it.ID] {
				continue
			}
			writes = append(writes, types.WriteRequest{DeleteRequest: &types.DeleteRequest{Key: itemKey(it.Collection, it.ID)}})
		}
	}

	for batch := range slices.Chunk(writes, maxBatchWrite) {
		if err := r.batchWrite(ctx, batch); err != nil {
			return err
		}
	}
	return nil
}

// Load reads the whole snapshot back. An empty table yields an empty
// snapshot.
func (r *SnapshotDynamoRepository) Load(ctx context.Context) (entities.Snapshot, error) {
	var all []snapshotItem
	for _, c := range snapshotCollections {
		items, err := r.queryCollection(ctx, c, false)
		if err != nil {
			return entities.Snapshot{}, err
		}
		all = append(all, items...)
	}
	return fromSnapshotItems(all)
}

func (r *SnapshotDynamoRepository) queryCollection(ctx context.Context, c entities.Collection, keysOnly bool) ([]snapshotItem, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("#collection = :collection"),
		ExpressionAttributeNames: map[string]string{
			"#collection": "collection",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":collection": &types.AttributeValueMemberS{Value: string(c)},
		},
		ConsistentRead: aws.Bool(true),
	}
	if keysOnly {
		input.ProjectionExpression = aws.String("#collection, #id")
		input.ExpressionAttributeNames = mergeNames(input.ExpressionAttributeNames, map[string]string{"#id": "id"})
	}

	var out []snapshotItem
	paginator := dynamodb.NewQueryPaginator(r.ddb, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("query %s: %w", c, err)
		}
		var items []snapshotItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		out = append(out, items...)
	}
	return out, nil
}

func (r *SnapshotDynamoRepository) batchWrite(ctx context.Context, batch []types.WriteRequest) error {
	pending := map[string][]types.WriteRequest{r.tableName: batch}
	for attempt := 0; len(pending[r.tableName]) > 0; attempt++ {
		if attempt == maxBatchRetries {
			return fmt.Errorf("batch write: %d items left unprocessed", len(pending[r.tableName]))
		}
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Duration(attempt) * 100 * time.Millisecond):
			}
		}
		out, err := r.ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{RequestItems: pending})
		if err != nil {
			return err
		}
		pending = out.UnprocessedItems
	}
	return nil
}

func itemKey(collection, id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"collection": &types.AttributeValueMemberS{Value: collection},
		"id":         &types.AttributeValueMemberS{Value: id},
	}
}

type identified interface {
	EntityID() string
}

func encodeCollection[T identified](c entities.Collection, list []T, savedAt string) ([]snapshotItem, error) {
	out := make([]snapshotItem, 0, len(list))
	for i, e := range list {
		payload, err := json.Marshal(e)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s: %w", c, e.EntityID(), err)
		}
		out = append(out, snapshotItem{
			Collection: string(c),
			ID:         e.EntityID(),
			Position:   i,
			Payload:    string(payload),
			SavedAt:    savedAt,
		})
	}
	return out, nil
}

func toSnapshotItems(snap entities.Snapshot, savedAt time.Time) ([]snapshotItem, error) {
	at := savedAt.Format(time.RFC3339Nano)
	var out []snapshotItem
	add := func(items []snapshotItem, err error) error {
		if err != nil {
			return err
		}
		out = append(out, items...)
		return nil
	}
	if err := errors.Join(
		add(encodeCollection(entities.CollectionRequests, snap.Requests, at)),
		add(encodeCollection(entities.CollectionProjects, snap.Projects, at)),
		add(encodeCollection(entities.CollectionTeams, snap.Teams, at)),
		add(encodeCollection(entities.CollectionVehicles, snap.Vehicles, at)),
		add(encodeCollection(entities.CollectionSupplyOrders, snap.SupplyOrders, at)),
		add(encodeCollection(entities.CollectionLogisticsEvents, snap.LogisticsEvents, at)),
	); err != nil {
		return nil, err
	}
	return out, nil
}

func decodeInto[T any](dst *[]T, it snapshotItem) error {
	var v T
	if err := json.Unmarshal([]byte(it.Payload), &v); err != nil {
		return fmt.Errorf("decode %s %s: %w", it.Collection, it.ID, err)
	}
	*dst = append(*dst, v)
	return nil
}

func fromSnapshotItems(items []snapshotItem) (entities.Snapshot, error) {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b snapshotItem) int { return a.Position - b.Position })

	var snap entities.Snapshot
	for _, it := range sorted {
		var err error
		switch entities.Collection(it.Collection) {
		case entities.CollectionRequests:
			err = decodeInto(&snap.Requests, it)
		case entities.CollectionProjects:
			err = decodeInto(&snap.Projects, it)
		case entities.CollectionTeams:
			err = decodeInto(&snap.Teams, it)
		case entities.CollectionVehicles:
			err = decodeInto(&snap.Vehicles, it)
		case entities.CollectionSupplyOrders:
			err = decodeInto(&snap.SupplyOrders, it)
		case entities.CollectionLogisticsEvents:
			err = decodeInto(&snap.LogisticsEvents, it)
		default:
			log.Printf("[snapshot][repository] skipping unknown collection=%s id=%s", it.Collection, it.ID)
		}
		if err != nil {
			return entities.Snapshot{}, err
		}
	}
	return snap, nil
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
