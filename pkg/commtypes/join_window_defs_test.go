package commtypes

import (
	"testing"
	"time"
)

const (
	TEST_JWS_SIZE       = 123
	TEST_JWS_OTHER_SIZE = 456
)

func TestBeforeShouldNotModifyGrace(t *testing.T) {
	jws, err := NewJoinWindowsWithGrace(time.Duration(TEST_JWS_SIZE)*time.Millisecond,
		time.Duration(TEST_JWS_OTHER_SIZE)*time.Millisecond)
	if err != nil {
		t.Fatal(err.Error())
	}
	jws, err = jws.Before(time.Duration(TEST_JWS_SIZE) * time.Second)
	if err != nil {
		t.Fatal(err.Error())
	}
	if jws.GracePeriodMs() != TEST_JWS_OTHER_SIZE {
		t.Fatal("should equal")
	}
}

func TestAfterShouldNotModifyGrace(t *testing.T) {
	jws, err := NewJoinWindowsWithGrace(time.Duration(TEST_JWS_SIZE)*time.Millisecond,
		time.Duration(TEST_JWS_OTHER_SIZE)*time.Millisecond)
	if err != nil {
		t.Fatal(err.Error())
	}
	jws, err = jws.After(time.Duration(TEST_JWS_SIZE) * time.Second)
	if err != nil {
		t.Fatal(err.Error())
	}
	if jws.GracePeriodMs() != TEST_JWS_OTHER_SIZE {
		t.Fatal("should equal")
	}
}

func TestAsymmetricWindow(t *testing.T) {
	jws, err := NewJoinWindowsNoGrace(time.Duration(0))
	if err != nil {
		t.Fatal(err.Error())
	}
	jws, err = jws.After(time.Duration(TEST_JWS_SIZE) * time.Millisecond)
	if err != nil {
		t.Fatal(err.Error())
	}
	if jws.BeforeMs() != 0 {
		t.Fatal("before should stay 0")
	}
	if jws.AfterMs() != TEST_JWS_SIZE {
		t.Fatal("after should be updated")
	}
	if jws.MaxSize() != TEST_JWS_SIZE {
		t.Fatal("max size should match after")
	}
}

func TestInverseWindowRejected(t *testing.T) {
	jws, err := NewJoinWindowsNoGrace(time.Duration(TEST_JWS_SIZE) * time.Millisecond)
	if err != nil {
		t.Fatal(err.Error())
	}
	_, err = jws.Before(-time.Duration(3*TEST_JWS_SIZE) * time.Millisecond)
	if err == nil {
		t.Fatal("negative window size should be rejected")
	}
}
