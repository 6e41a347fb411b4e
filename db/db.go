package db

import (
	"strconv"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/jsphweid/noteflow/constants"
	"github.com/jsphweid/noteflow/model"
	"github.com/pkg/errors"
)

// BatchGetItem limit
const maxBatch = 100

// Client reads and writes recording metadata keyed by recording id.
type Client struct {
	api   dynamodbiface.DynamoDBAPI
	table string
}

// New returns nil when no endpoint is configured, metadata is optional.
func New() (*Client, error) {
	endpoint := constants.GetDynamoEndpoint()
	if endpoint == "" {
		return nil, nil
	}

	sess, err := session.NewSession(&aws.Config{
		Region:   aws.String("localhost"),
		Endpoint: aws.String(endpoint),
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not create a new DynamoDB session")
	}
	return NewWithAPI(dynamodb.New(sess), constants.MetadataTable), nil
}

func NewWithAPI(api dynamodbiface.DynamoDBAPI, table string) *Client {
	return &Client{api: api, table: table}
}

func (c *Client) GetRecordingMetadatas(ids []string) (map[string]model.RecordingMetadata, error) {
	if len(ids) > maxBatch {
		panic("Not supposed to pass in more than 100 ids!")
	}

	res := make(map[string]model.RecordingMetadata)
	if len(ids) == 0 {
		return res, nil
	}

	var keys []map[string]*dynamodb.AttributeValue
	for _, id := range ids {
		keys = append(keys, map[string]*dynamodb.AttributeValue{
			"PK": {S: aws.String(id)},
		})
	}

	out, err := c.api.BatchGetItem(&dynamodb.BatchGetItemInput{
		RequestItems: map[string]*dynamodb.KeysAndAttributes{
			c.table: {Keys: keys},
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "Error from DynamoDB")
	}

	for _, item := range out.Responses[c.table] {
		if item["PK"] == nil || item["PK"].S == nil {
			continue
		}
		res[*item["PK"].S] = metadataFromItem(item)
	}
	return res, nil
}

func (c *Client) PutRecordingMetadata(id string, meta model.RecordingMetadata) error {
	item := itemFromMetadata(meta)
	item["PK"] = &dynamodb.AttributeValue{S: aws.String(id)}
	_, err := c.api.PutItem(&dynamodb.PutItemInput{
		TableName: aws.String(c.table),
		Item:      item,
	})
	return errors.Wrapf(err, "could not store metadata for %s", id)
}

func metadataFromItem(item map[string]*dynamodb.AttributeValue) model.RecordingMetadata {
	var m model.RecordingMetadata
	if v := item["Year"]; v != nil && v.N != nil {
		year, _ := strconv.ParseUint(*v.N, 10, 32)
		m.Year = uint(year)
	}
	if v := item["Title"]; v != nil && v.S != nil {
		m.Title = *v.S
	}
	if v := item["Artist"]; v != nil && v.S != nil {
		m.Artist = *v.S
	}
	return m
}

func itemFromMetadata(m model.RecordingMetadata) map[string]*dynamodb.AttributeValue {
	item := map[string]*dynamodb.AttributeValue{
		"Title": {S: aws.String(m.Title)},
	}
	if m.Artist != "" {
		item["Artist"] = &dynamodb.AttributeValue{S: aws.String(m.Artist)}
	}
	if m.Year != 0 {
		item["Year"] = &dynamodb.AttributeValue{N: aws.String(strconv.FormatUint(uint64(m.Year), 10))}
	}
	return item
}
