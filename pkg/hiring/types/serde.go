package types

import (
	"encoding/json"

	"hiring-stream/pkg/common_errors"
	"hiring-stream/pkg/commtypes"
)

type JobJSONSerde struct{}

var _ = commtypes.Serde[Job](JobJSONSerde{})

func (s JobJSONSerde) Encode(value Job) ([]byte, error) {
	return json.Marshal(&value)
}

func (s JobJSONSerde) Decode(value []byte) (Job, error) {
	j := Job{}
	if err := json.Unmarshal(value, &j); err != nil {
		return Job{}, err
	}
	return j, nil
}

type JobMsgpSerde struct{}

var _ = commtypes.Serde[Job](JobMsgpSerde{})

func (s JobMsgpSerde) Encode(value Job) ([]byte, error) {
	return value.MarshalMsg(nil)
}

func (s JobMsgpSerde) Decode(value []byte) (Job, error) {
	j := Job{}
	if _, err := j.UnmarshalMsg(value); err != nil {
		return Job{}, err
	}
	return j, nil
}

func GetJobSerde(serdeFormat commtypes.SerdeFormat) (commtypes.Serde[Job], error) {
	switch serdeFormat {
	case commtypes.JSON:
		return JobJSONSerde{}, nil
	case commtypes.MSGP:
		return JobMsgpSerde{}, nil
	default:
		return nil, common_errors.ErrUnrecognizedSerdeFormat
	}
}

type ApplicationJSONSerde struct{}

var _ = commtypes.Serde[Application](ApplicationJSONSerde{})

func (s ApplicationJSONSerde) Encode(value Application) ([]byte, error) {
	return json.Marshal(&value)
}

func (s ApplicationJSONSerde) Decode(value []byte) (Application, error) {
	a := Application{}
	if err := json.Unmarshal(value, &a); err != nil {
		return Application{}, err
	}
	return a, nil
}

type ApplicationMsgpSerde struct{}

var _ = commtypes.Serde[Application](ApplicationMsgpSerde{})

func (s ApplicationMsgpSerde) Encode(value Application) ([]byte, error) {
	return value.MarshalMsg(nil)
}

func (s ApplicationMsgpSerde) Decode(value []byte) (Application, error) {
	a := Application{}
	if _, err := a.UnmarshalMsg(value); err != nil {
		return Application{}, err
	}
	return a, nil
}

func GetApplicationSerde(serdeFormat commtypes.SerdeFormat) (commtypes.Serde[Application], error) {
	switch serdeFormat {
	case commtypes.JSON:
		return ApplicationJSONSerde{}, nil
	case commtypes.MSGP:
		return ApplicationMsgpSerde{}, nil
	default:
		return nil, common_errors.ErrUnrecognizedSerdeFormat
	}
}

type ScoreJSONSerde struct{}

var _ = commtypes.Serde[Score](ScoreJSONSerde{})

func (s ScoreJSONSerde) Encode(value Score) ([]byte, error) {
	return json.Marshal(&value)
}

func (s ScoreJSONSerde) Decode(value []byte) (Score, error) {
	sc := Score{}
	if err := json.Unmarshal(value, &sc); err != nil {
		return Score{}, err
	}
	return sc, nil
}

type ScoreMsgpSerde struct{}

var _ = commtypes.Serde[Score](ScoreMsgpSerde{})

func (s ScoreMsgpSerde) Encode(value Score) ([]byte, error) {
	return value.MarshalMsg(nil)
}

func (s ScoreMsgpSerde) Decode(value []byte) (Score, error) {
	sc := Score{}
	if _, err := sc.UnmarshalMsg(value); err != nil {
		return Score{}, err
	}
	return sc, nil
}

func GetScoreSerde(serdeFormat commtypes.SerdeFormat) (commtypes.Serde[Score], error) {
	switch serdeFormat {
	case commtypes.JSON:
		return ScoreJSONSerde{}, nil
	case commtypes.MSGP:
		return ScoreMsgpSerde{}, nil
	default:
		return nil, common_errors.ErrUnrecognizedSerdeFormat
	}
}

type JoinedApplicationJSONSerde struct{}

var _ = commtypes.Serde[JoinedApplication](JoinedApplicationJSONSerde{})

func (s JoinedApplicationJSONSerde) Encode(value JoinedApplication) ([]byte, error) {
	return json.Marshal(&value)
}

func (s JoinedApplicationJSONSerde) Decode(value []byte) (JoinedApplication, error) {
	ja := JoinedApplication{}
	if err := json.Unmarshal(value, &ja); err != nil {
		return JoinedApplication{}, err
	}
	return ja, nil
}

type JoinedApplicationMsgpSerde struct{}

var _ = commtypes.Serde[JoinedApplication](JoinedApplicationMsgpSerde{})

func (s JoinedApplicationMsgpSerde) Encode(value JoinedApplication) ([]byte, error) {
	return value.MarshalMsg(nil)
}

func (s JoinedApplicationMsgpSerde) Decode(value []byte) (JoinedApplication, error) {
	ja := JoinedApplication{}
	if _, err := ja.UnmarshalMsg(value); err != nil {
		return JoinedApplication{}, err
	}
	return ja, nil
}

func GetJoinedApplicationSerde(serdeFormat commtypes.SerdeFormat) (commtypes.Serde[JoinedApplication], error) {
	switch serdeFormat {
	case commtypes.JSON:
		return JoinedApplicationJSONSerde{}, nil
	case commtypes.MSGP:
		return JoinedApplicationMsgpSerde{}, nil
	default:
		return nil, common_errors.ErrUnrecognizedSerdeFormat
	}
}

type ScoredApplicationJSONSerde struct{}

var _ = commtypes.Serde[ScoredApplication](ScoredApplicationJSONSerde{})

func (s ScoredApplicationJSONSerde) Encode(value ScoredApplication) ([]byte, error) {
	return json.Marshal(&value)
}

func (s ScoredApplicationJSONSerde) Decode(value []byte) (ScoredApplication, error) {
	sa := ScoredApplication{}
	if err := json.Unmarshal(value, &sa); err != nil {
		return ScoredApplication{}, err
	}
	return sa, nil
}

type ScoredApplicationMsgpSerde struct{}

var _ = commtypes.Serde[ScoredApplication](ScoredApplicationMsgpSerde{})

func (s ScoredApplicationMsgpSerde) Encode(value ScoredApplication) ([]byte, error) {
	return value.MarshalMsg(nil)
}

func (s ScoredApplicationMsgpSerde) Decode(value []byte) (ScoredApplication, error) {
	sa := ScoredApplication{}
	if _, err := sa.UnmarshalMsg(value); err != nil {
		return ScoredApplication{}, err
	}
	return sa, nil
}

func GetScoredApplicationSerde(serdeFormat commtypes.SerdeFormat) (commtypes.Serde[ScoredApplication], error) {
	switch serdeFormat {
	case commtypes.JSON:
		return ScoredApplicationJSONSerde{}, nil
	case commtypes.MSGP:
		return ScoredApplicationMsgpSerde{}, nil
	default:
		return nil, common_errors.ErrUnrecognizedSerdeFormat
	}
}
