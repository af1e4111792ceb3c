package indexes_test

import (
	"testing"

	"github.com/dalemusser/leadsadmin/internal/app/system/indexes"
	"github.com/dalemusser/leadsadmin/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func indexNames(t *testing.T, db *mongo.Database, coll string) map[string]bool {
	t.Helper()
	ctx, cancel := testutil.TestContext()
	defer cancel()

	cur, err := db.Collection(coll).Indexes().List(ctx)
	if err != nil {
		t.Fatalf("List indexes: %v", err)
	}
	defer cur.Close(ctx)

	names := map[string]bool{}
	for cur.Next(ctx) {
		var idx bson.M
		if err := cur.Decode(&idx); err != nil {
			continue
		}
		if name, ok := idx["name"].(string); ok {
			names[name] = true
		}
	}
	return names
}

func TestEnsureAll_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("first EnsureAll: %v", err)
	}
	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("second EnsureAll: %v", err)
	}
}

func TestEnsureAll_CreatesIndexes(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cats := indexNames(t, db, "categories")
	if !cats["uniq_categories_name"] {
		t.Errorf("missing uniq_categories_name, have %v", cats)
	}
	leads := indexNames(t, db, "leads")
	for _, want := range []string{"idx_leads_createdat_desc", "idx_leads_category"} {
		if !leads[want] {
			t.Errorf("missing %s, have %v", want, leads)
		}
	}
}

func TestEnsureAll_RenamesMismatchedIndex(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// Replace the unique index with a plain one under another name.
	if _, err := db.Collection("categories").Indexes().DropOne(ctx, "uniq_categories_name"); err != nil {
		t.Fatalf("DropOne: %v", err)
	}
	if _, err := db.Collection("categories").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "name", Value: 1}},
	}); err != nil {
		t.Fatalf("CreateOne: %v", err)
	}

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll: %v", err)
	}
	if !indexNames(t, db, "categories")["uniq_categories_name"] {
		t.Error("expected uniq_categories_name to be restored")
	}
}
