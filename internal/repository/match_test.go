package repository

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	spaceDomain "github.com/ahmedroou/scoreverse0-sub000/internal/domain/space"
)

func TestScopedMatchFilterForSpace(t *testing.T) {
	got := scopedMatchFilter("owner", spaceDomain.ScopeFor("office"))
	want := bson.M{"owner_id": "owner", "space_id": "office"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("filter = %v, want %v", got, want)
	}
}

func TestScopedMatchFilterForGlobal(t *testing.T) {
	got := scopedMatchFilter("owner", spaceDomain.GlobalScope())
	want := bson.M{
		"owner_id": "owner",
		"space_id": bson.M{"$in": bson.A{nil, ""}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("filter = %v, want %v", got, want)
	}
}
