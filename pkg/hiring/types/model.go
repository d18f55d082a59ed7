//go:generate msgp
//msgp:ignore JobJSONSerde ApplicationJSONSerde ScoreJSONSerde
//msgp:ignore JoinedApplicationJSONSerde ScoredApplicationJSONSerde

package types

// Job is a posting row in the jobs table. The jobs topic doubles as the
// table's changelog; rows are only ever upserted.
type Job struct {
	Title    string `msg:"title" json:"title"`
	ID       uint64 `msg:"id" json:"id"`
	DateTime int64  `msg:"dateTime" json:"dateTime"`
}

// Application is an append-only stream event keyed by application id.
type Application struct {
	FirstName string `msg:"firstName" json:"firstName"`
	LastName  string `msg:"lastName" json:"lastName"`
	ID        uint64 `msg:"id" json:"id"`
	JobID     uint64 `msg:"jobId" json:"jobId"`
	DateTime  int64  `msg:"dateTime" json:"dateTime"`
}

// Score is an append-only stream event keyed by application id. It may
// arrive before, after, or never, relative to its Application.
type Score struct {
	Value         float64 `msg:"value" json:"value"`
	ApplicationID uint64  `msg:"applicationId" json:"applicationId"`
	DateTime      int64   `msg:"dateTime" json:"dateTime"`
}

// JoinedApplication is the intermediate record produced when an
// Application finds its Job in the table.
type JoinedApplication struct {
	FirstName string `msg:"firstName" json:"firstName"`
	LastName  string `msg:"lastName" json:"lastName"`
	JobTitle  string `msg:"jobTitle" json:"jobTitle"`
	ID        uint64 `msg:"id" json:"id"`
	JobID     uint64 `msg:"jobId" json:"jobId"`
	DateTime  int64  `msg:"dateTime" json:"dateTime"`
}

// ScoredApplication is an output record. Score is nil on the first
// emission and set on the optional second emission.
type ScoredApplication struct {
	Score     *float64 `msg:"score" json:"score,omitempty"`
	FirstName string   `msg:"firstName" json:"firstName"`
	LastName  string   `msg:"lastName" json:"lastName"`
	JobTitle  string   `msg:"jobTitle" json:"jobTitle"`
	ID        uint64   `msg:"id" json:"id"`
	JobID     uint64   `msg:"jobId" json:"jobId"`
	DateTime  int64    `msg:"dateTime" json:"dateTime"`
}

func NewJoinedApplication(app *Application, job *Job) JoinedApplication {
	return JoinedApplication{
		FirstName: app.FirstName,
		LastName:  app.LastName,
		JobTitle:  job.Title,
		ID:        app.ID,
		JobID:     app.JobID,
		DateTime:  app.DateTime,
	}
}

func NewUnscoredApplication(joined *JoinedApplication) ScoredApplication {
	return ScoredApplication{
		Score:     nil,
		FirstName: joined.FirstName,
		LastName:  joined.LastName,
		JobTitle:  joined.JobTitle,
		ID:        joined.ID,
		JobID:     joined.JobID,
		DateTime:  joined.DateTime,
	}
}

func NewScoredApplication(joined *JoinedApplication, score *Score, ts int64) ScoredApplication {
	val := score.Value
	return ScoredApplication{
		Score:     &val,
		FirstName: joined.FirstName,
		LastName:  joined.LastName,
		JobTitle:  joined.JobTitle,
		ID:        joined.ID,
		JobID:     joined.JobID,
		DateTime:  ts,
	}
}

func (j Job) ExtractEventTime() (int64, error) {
	return j.DateTime, nil
}

func (a Application) ExtractEventTime() (int64, error) {
	return a.DateTime, nil
}

func (s Score) ExtractEventTime() (int64, error) {
	return s.DateTime, nil
}

func (ja JoinedApplication) ExtractEventTime() (int64, error) {
	return ja.DateTime, nil
}

func (sa ScoredApplication) ExtractEventTime() (int64, error) {
	return sa.DateTime, nil
}
