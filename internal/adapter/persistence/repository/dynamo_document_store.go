package repository

import (
	"context"
	"sort"

	"github.com/mayconabentes-bi/calculadora-orcamento-cdl-sub001/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// DynamoDocumentStore implements the remote document-store contract on
// DynamoDB: one table per collection, documents keyed by a minted uuid.
//
// Table requirements:
//   - PK: id (string)
//
// The contract only needs create / get / query-by-field / upsert-merge, all
// idempotent under retry, which is what the offline-pending sync relies on.
type DynamoDocumentStore struct {
	ddb         *dynamodb.Client
	tablePrefix string
}

var _ interfaces.IRemoteStore = (*DynamoDocumentStore)(nil)

func NewDynamoDocumentStore(ddb *dynamodb.Client) *DynamoDocumentStore {
	return &DynamoDocumentStore{
		ddb:         ddb,
		tablePrefix: getenvDefault("DOCSTORE_TABLE_PREFIX", ""),
	}
}

func (r *DynamoDocumentStore) table(collection string) string {
	return r.tablePrefix + collection
}

func (r *DynamoDocumentStore) Create(ctx context.Context, collection string, doc map[string]any) (string, error) {
	id := uuid.NewString()

	item, err := attributevalue.MarshalMap(doc)
	if err != nil {
		return "", err
	}
	item["id"] = &types.AttributeValueMemberS{Value: id}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.table(collection)),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *DynamoDocumentStore) Get(ctx context.Context, collection, id string) (map[string]any, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table(collection)),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var doc map[string]any
	if err := attributevalue.UnmarshalMap(out.Item, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (r *DynamoDocumentStore) Query(ctx context.Context, collection, field string, value any) ([]map[string]any, error) {
	av, err := attributevalue.Marshal(value)
	if err != nil {
		return nil, err
	}

	// Collections here are small (quote history, leads); a filtered scan
	// keeps the store schema-free. Paginate to honor the 1MB scan limit.
	var docs []map[string]any
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:                 aws.String(r.table(collection)),
			FilterExpression:          aws.String("#f = :v"),
			ExpressionAttributeNames:  map[string]string{"#f": field},
			ExpressionAttributeValues: map[string]types.AttributeValue{":v": av},
			ExclusiveStartKey:         startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, item := range out.Items {
			var doc map[string]any
			if err := attributevalue.UnmarshalMap(item, &doc); err != nil {
				return nil, err
			}
			docs = append(docs, doc)
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return docs, nil
}

func (r *DynamoDocumentStore) UpsertMerge(ctx context.Context, collection, id string, partial map[string]any) error {
	if len(partial) == 0 {
		return nil
	}

	// Deterministic expression ordering keeps retries byte-identical.
	keys := make([]string, 0, len(partial))
	for k := range partial {
		if k == "id" {
			continue
		}
		keys = append(keys, k)
	}
	if len(keys) == 0 {
		return nil
	}
	sort.Strings(keys)

	expr := "SET "
	names := map[string]string{}
	values := map[string]types.AttributeValue{}
	for i, k := range keys {
		av, err := attributevalue.Marshal(partial[k])
		if err != nil {
			return err
		}
		nameph := "#f" + itoa(i)
		valueph := ":v" + itoa(i)
		if i > 0 {
			expr += ", "
		}
		expr += nameph + " = " + valueph
		names[nameph] = k
		values[valueph] = av
	}

	// No existence condition: merging into a missing document recreates it,
	// which is the desired upsert behavior.
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.table(collection)),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	})
	return err
}
