package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/ampconv"
	"github.com/fwojciec/ampconv/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestConversion(t *testing.T, svc *sqlite.ConversionService, source string) *ampconv.Conversion {
	t.Helper()
	conv := &ampconv.Conversion{
		Source: source,
		HTML:   `<amp-twitter data-tweetid="1"></amp-twitter>`,
		Actions: []ampconv.ActionTaken{
			{Subject: "blockquote.twitter-tweet", Kind: ampconv.EmbedConverted, Line: 3, Context: `<blockquote class="twitter-tweet">`},
			{Subject: "blockquote.twitter-tweet (with twitter script tag)", Kind: ampconv.EmbedConverted, Line: 0, Context: "<blockquote>"},
		},
	}
	require.NoError(t, svc.CreateConversion(context.Background(), conv))
	return conv
}

func TestConversionService_CreateConversion(t *testing.T) {
	t.Parallel()

	t.Run("sets ID, hash and timestamp", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewConversionService(setupTestDB(t))

		conv := createTestConversion(t, svc, "post.html")

		assert.NotEmpty(t, conv.ID)
		assert.Len(t, conv.ContentHash, 16)
		assert.False(t, conv.ConvertedAt.IsZero())
	})

	t.Run("same HTML hashes the same", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewConversionService(setupTestDB(t))

		a := createTestConversion(t, svc, "a.html")
		b := createTestConversion(t, svc, "b.html")

		assert.NotEqual(t, a.ID, b.ID)
		assert.Equal(t, a.ContentHash, b.ContentHash)
	})

	t.Run("returns EINVALID without source", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewConversionService(setupTestDB(t))

		err := svc.CreateConversion(context.Background(), &ampconv.Conversion{})

		require.Error(t, err)
		assert.Equal(t, ampconv.EINVALID, ampconv.ErrorCode(err))
	})

	t.Run("records conversion without actions", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewConversionService(setupTestDB(t))
		conv := &ampconv.Conversion{Source: "plain.html", HTML: "<p></p>"}

		require.NoError(t, svc.CreateConversion(context.Background(), conv))

		found, err := svc.FindConversionByID(context.Background(), conv.ID)
		require.NoError(t, err)
		assert.Empty(t, found.Actions)
	})
}

func TestConversionService_FindConversionByID(t *testing.T) {
	t.Parallel()

	t.Run("returns conversion with actions in order", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewConversionService(setupTestDB(t))
		conv := createTestConversion(t, svc, "post.html")

		found, err := svc.FindConversionByID(context.Background(), conv.ID)

		require.NoError(t, err)
		assert.Equal(t, conv.ID, found.ID)
		assert.Equal(t, "post.html", found.Source)
		assert.Equal(t, conv.HTML, found.HTML)
		assert.Equal(t, conv.ContentHash, found.ContentHash)
		assert.True(t, conv.ConvertedAt.Equal(found.ConvertedAt))
		assert.Equal(t, conv.Actions, found.Actions)
	})

	t.Run("returns ENOTFOUND for unknown ID", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewConversionService(setupTestDB(t))

		_, err := svc.FindConversionByID(context.Background(), "missing")

		require.Error(t, err)
		assert.Equal(t, ampconv.ENOTFOUND, ampconv.ErrorCode(err))
	})
}

func TestConversionService_FindConversions(t *testing.T) {
	t.Parallel()

	t.Run("lists newest first without HTML or actions", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewConversionService(setupTestDB(t))
		first := createTestConversion(t, svc, "a.html")
		second := createTestConversion(t, svc, "b.html")

		convs, err := svc.FindConversions(context.Background(), ampconv.ConversionFilter{})

		require.NoError(t, err)
		require.Len(t, convs, 2)
		assert.Equal(t, second.ID, convs[0].ID)
		assert.Equal(t, first.ID, convs[1].ID)
		assert.Empty(t, convs[0].HTML)
		assert.Empty(t, convs[0].Actions)
	})

	t.Run("filters by source", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewConversionService(setupTestDB(t))
		createTestConversion(t, svc, "a.html")
		b := createTestConversion(t, svc, "b.html")

		source := "b.html"
		convs, err := svc.FindConversions(context.Background(), ampconv.ConversionFilter{Source: &source})

		require.NoError(t, err)
		require.Len(t, convs, 1)
		assert.Equal(t, b.ID, convs[0].ID)
	})

	t.Run("filters by ID", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewConversionService(setupTestDB(t))
		a := createTestConversion(t, svc, "a.html")
		createTestConversion(t, svc, "b.html")

		convs, err := svc.FindConversions(context.Background(), ampconv.ConversionFilter{ID: &a.ID})

		require.NoError(t, err)
		require.Len(t, convs, 1)
		assert.Equal(t, "a.html", convs[0].Source)
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewConversionService(setupTestDB(t))
		createTestConversion(t, svc, "a.html")
		createTestConversion(t, svc, "b.html")
		createTestConversion(t, svc, "c.html")

		limited, err := svc.FindConversions(context.Background(), ampconv.ConversionFilter{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, limited, 2)

		offset, err := svc.FindConversions(context.Background(), ampconv.ConversionFilter{Offset: 2})
		require.NoError(t, err)
		require.Len(t, offset, 1)
		assert.Equal(t, "a.html", offset[0].Source)
	})
}

func TestConversionService_DeleteConversion(t *testing.T) {
	t.Parallel()

	t.Run("removes conversion and its actions", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewConversionService(db)
		conv := createTestConversion(t, svc, "post.html")
		ctx := context.Background()

		require.NoError(t, svc.DeleteConversion(ctx, conv.ID))

		_, err := svc.FindConversionByID(ctx, conv.ID)
		assert.Equal(t, ampconv.ENOTFOUND, ampconv.ErrorCode(err))

		var count int
		require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM actions WHERE conversion_id = ?", conv.ID).Scan(&count))
		assert.Zero(t, count)
	})

	t.Run("returns ENOTFOUND for unknown ID", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewConversionService(setupTestDB(t))

		err := svc.DeleteConversion(context.Background(), "missing")

		require.Error(t, err)
		assert.Equal(t, ampconv.ENOTFOUND, ampconv.ErrorCode(err))
	})
}
