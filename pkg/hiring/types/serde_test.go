package types

import (
	"reflect"
	"testing"

	"hiring-stream/pkg/commtypes"
)

func TestScoredApplicationNullableScore(t *testing.T) {
	score := 90.0
	cases := []ScoredApplication{
		{Score: nil, FirstName: "Jane", LastName: "Doe", JobTitle: "Cashier", ID: 1001, JobID: 1, DateTime: 1000},
		{Score: &score, FirstName: "Jane", LastName: "Doe", JobTitle: "Cashier", ID: 1001, JobID: 1, DateTime: 2000},
	}
	for _, serdeFormat := range []commtypes.SerdeFormat{commtypes.JSON, commtypes.MSGP} {
		serde, err := GetScoredApplicationSerde(serdeFormat)
		if err != nil {
			t.Fatalf("fail to get serde: %v", err)
		}
		for _, sa := range cases {
			enc, err := serde.Encode(sa)
			if err != nil {
				t.Fatalf("encode err: %v", err)
			}
			got, err := serde.Decode(enc)
			if err != nil {
				t.Fatalf("decode err: %v", err)
			}
			if !reflect.DeepEqual(got, sa) {
				t.Errorf("round trip mismatch: got %+v, expected %+v", got, sa)
			}
		}
	}
}

func TestJoinedApplicationFromParts(t *testing.T) {
	app := Application{FirstName: "Jane", LastName: "Doe", ID: 1001, JobID: 1, DateTime: 1000}
	job := Job{Title: "Cashier", ID: 1, DateTime: 500}
	joined := NewJoinedApplication(&app, &job)
	if joined.ID != 1001 || joined.JobID != 1 || joined.JobTitle != "Cashier" || joined.DateTime != 1000 {
		t.Errorf("unexpected joined record: %+v", joined)
	}

	unscored := NewUnscoredApplication(&joined)
	if unscored.Score != nil || unscored.DateTime != 1000 {
		t.Errorf("unexpected unscored record: %+v", unscored)
	}
	sc := Score{Value: 90.0, ApplicationID: 1001, DateTime: 2000}
	scored := NewScoredApplication(&joined, &sc, 2000)
	if scored.Score == nil || *scored.Score != 90.0 || scored.DateTime != 2000 {
		t.Errorf("unexpected scored record: %+v", scored)
	}
}
