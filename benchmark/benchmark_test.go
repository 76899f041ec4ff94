package benchmark

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ikmak/bson"
)

func sampleDocument() *bson.Document {
	return bson.NewDocument(
		bson.Elem("name", bson.String("benchmark")),
		bson.Elem("count", bson.Int64(123456789)),
		bson.Elem("enabled", bson.Boolean(true)),
		bson.Elem("tags", bson.EmbedArray(bson.NewArray(
			bson.String("a"), bson.String("b"), bson.String("c"),
		))),
		bson.Elem("nested", bson.EmbedDocument(bson.NewDocument(
			bson.Elem("ratio", bson.Double(0.25)),
		))),
	)
}

func TestMarshal(t *testing.T) {
	res, err := Marshal(100, sampleDocument())
	require.NoError(t, err)
	require.Equal(t, 100, res.Iterations)
	require.NotZero(t, res.Mean)
}

func TestReadDocument(t *testing.T) {
	b, err := bson.Marshal(sampleDocument())
	require.NoError(t, err)

	res, err := ReadDocument(100, b)
	require.NoError(t, err)
	require.Equal(t, 100, res.Iterations)
	require.NotZero(t, res.Mean)
}

func BenchmarkMarshal(b *testing.B) {
	doc := sampleDocument()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := doc.MarshalBSON(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkReadDocument(b *testing.B) {
	raw, err := bson.Marshal(sampleDocument())
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bson.ReadDocument(raw); err != nil {
			b.Fatal(err)
		}
	}
}
