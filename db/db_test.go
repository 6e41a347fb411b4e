package db

import (
	"testing"

	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/jsphweid/noteflow/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDynamo keeps items in memory, keyed by PK.
type fakeDynamo struct {
	dynamodbiface.DynamoDBAPI
	items map[string]map[string]*dynamodb.AttributeValue
}

func (f *fakeDynamo) PutItem(in *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
	f.items[*in.Item["PK"].S] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) BatchGetItem(in *dynamodb.BatchGetItemInput) (*dynamodb.BatchGetItemOutput, error) {
	out := &dynamodb.BatchGetItemOutput{Responses: map[string][]map[string]*dynamodb.AttributeValue{}}
	for table, ka := range in.RequestItems {
		for _, key := range ka.Keys {
			if item, ok := f.items[*key["PK"].S]; ok {
				out.Responses[table] = append(out.Responses[table], item)
			}
		}
	}
	return out, nil
}

func TestPutThenGet(t *testing.T) {
	c := NewWithAPI(&fakeDynamo{items: map[string]map[string]*dynamodb.AttributeValue{}}, "metadata")

	meta := model.RecordingMetadata{Title: "Etude", Artist: "Someone", Year: 2024}
	require.NoError(t, c.PutRecordingMetadata("abc", meta))
	require.NoError(t, c.PutRecordingMetadata("def", model.RecordingMetadata{Title: "Sketch"}))

	got, err := c.GetRecordingMetadatas([]string{"abc", "def", "missing"})
	require.NoError(t, err)
	assert.Equal(t, map[string]model.RecordingMetadata{
		"abc": meta,
		"def": {Title: "Sketch"},
	}, got)
}

func TestGetNothing(t *testing.T) {
	c := NewWithAPI(&fakeDynamo{}, "metadata")
	got, err := c.GetRecordingMetadatas(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestTooManyIdsPanics(t *testing.T) {
	c := NewWithAPI(&fakeDynamo{}, "metadata")
	assert.Panics(t, func() { c.GetRecordingMetadatas(make([]string, maxBatch+1)) })
}

func TestNewDisabledWithoutEndpoint(t *testing.T) {
	t.Setenv("DYNAMO_ENDPOINT", "")
	c, err := New()
	assert.NoError(t, err)
	assert.Nil(t, c)
}
