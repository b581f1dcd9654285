// Code generated by ent, DO NOT EDIT.

package ent

import (
	"biomind/ent/careergoal"
	"biomind/ent/lablog"
	"biomind/ent/predicate"
	"biomind/ent/quizresult"
	"biomind/ent/skillscore"
	"biomind/ent/topicmastery"
	"biomind/ent/user"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCareerGoal   = "CareerGoal"
	TypeLabLog       = "LabLog"
	TypeQuizResult   = "QuizResult"
	TypeSkillScore   = "SkillScore"
	TypeTopicMastery = "TopicMastery"
	TypeUser         = "User"
)

// CareerGoalMutation represents an operation that mutates the CareerGoal nodes in the graph.
type CareerGoalMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	user_id              *int
	adduser_id           *int
	target_role          *careergoal.TargetRole
	industry_skills      *map[string]float64
	roadmap              *[]string
	appendroadmap        []string
	mini_projects        *[]string
	appendmini_projects  []string
	certifications       *[]string
	appendcertifications []string
	readiness_score      *float64
	addreadiness_score   *float64
	generated_at         *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*CareerGoal, error)
	predicates           []predicate.CareerGoal
}

var _ ent.Mutation = (*CareerGoalMutation)(nil)

// careergoalOption allows management of the mutation configuration using functional options.
type careergoalOption func(*CareerGoalMutation)

// newCareerGoalMutation creates new mutation for the CareerGoal entity.
func newCareerGoalMutation(c config, op Op, opts ...careergoalOption) *CareerGoalMutation {
	m := &CareerGoalMutation{
		config:        c,
		op:            op,
		typ:           TypeCareerGoal,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCareerGoalID sets the ID field of the mutation.
func withCareerGoalID(id int) careergoalOption {
	return func(m *CareerGoalMutation) {
		var (
			err   error
			once  sync.Once
			value *CareerGoal
		)
		m.oldValue = func(ctx context.Context) (*CareerGoal, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CareerGoal.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCareerGoal sets the old CareerGoal of the mutation.
func withCareerGoal(node *CareerGoal) careergoalOption {
	return func(m *CareerGoalMutation) {
		m.oldValue = func(context.Context) (*CareerGoal, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CareerGoalMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CareerGoalMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CareerGoalMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CareerGoalMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CareerGoal.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *CareerGoalMutation) SetUserID(i int) {
	m.user_id = &i
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *CareerGoalMutation) UserID() (r int, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the CareerGoal entity.
// If the CareerGoal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CareerGoalMutation) OldUserID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// AddUserID adds i to the "user_id" field.
func (m *CareerGoalMutation) AddUserID(i int) {
	if m.adduser_id != nil {
		*m.adduser_id += i
	} else {
		m.adduser_id = &i
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *CareerGoalMutation) AddedUserID() (r int, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserID resets all changes to the "user_id" field.
func (m *CareerGoalMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
}

// SetTargetRole sets the "target_role" field.
func (m *CareerGoalMutation) SetTargetRole(cr careergoal.TargetRole) {
	m.target_role = &cr
}

// TargetRole returns the value of the "target_role" field in the mutation.
func (m *CareerGoalMutation) TargetRole() (r careergoal.TargetRole, exists bool) {
	v := m.target_role
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetRole returns the old "target_role" field's value of the CareerGoal entity.
// If the CareerGoal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CareerGoalMutation) OldTargetRole(ctx context.Context) (v careergoal.TargetRole, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetRole: %w", err)
	}
	return oldValue.TargetRole, nil
}

// ResetTargetRole resets all changes to the "target_role" field.
func (m *CareerGoalMutation) ResetTargetRole() {
	m.target_role = nil
}

// SetIndustrySkills sets the "industry_skills" field.
func (m *CareerGoalMutation) SetIndustrySkills(value map[string]float64) {
	m.industry_skills = &value
}

// IndustrySkills returns the value of the "industry_skills" field in the mutation.
func (m *CareerGoalMutation) IndustrySkills() (r map[string]float64, exists bool) {
	v := m.industry_skills
	if v == nil {
		return
	}
	return *v, true
}

// OldIndustrySkills returns the old "industry_skills" field's value of the CareerGoal entity.
// If the CareerGoal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CareerGoalMutation) OldIndustrySkills(ctx context.Context) (v map[string]float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIndustrySkills is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIndustrySkills requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIndustrySkills: %w", err)
	}
	return oldValue.IndustrySkills, nil
}

// ClearIndustrySkills clears the value of the "industry_skills" field.
func (m *CareerGoalMutation) ClearIndustrySkills() {
	m.industry_skills = nil
	m.clearedFields[careergoal.FieldIndustrySkills] = struct{}{}
}

// IndustrySkillsCleared returns if the "industry_skills" field was cleared in this mutation.
func (m *CareerGoalMutation) IndustrySkillsCleared() bool {
	_, ok := m.clearedFields[careergoal.FieldIndustrySkills]
	return ok
}

// ResetIndustrySkills resets all changes to the "industry_skills" field.
func (m *CareerGoalMutation) ResetIndustrySkills() {
	m.industry_skills = nil
	delete(m.clearedFields, careergoal.FieldIndustrySkills)
}

// SetRoadmap sets the "roadmap" field.
func (m *CareerGoalMutation) SetRoadmap(s []string) {
	m.roadmap = &s
	m.appendroadmap = nil
}

// Roadmap returns the value of the "roadmap" field in the mutation.
func (m *CareerGoalMutation) Roadmap() (r []string, exists bool) {
	v := m.roadmap
	if v == nil {
		return
	}
	return *v, true
}

// OldRoadmap returns the old "roadmap" field's value of the CareerGoal entity.
// If the CareerGoal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CareerGoalMutation) OldRoadmap(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoadmap is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoadmap requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoadmap: %w", err)
	}
	return oldValue.Roadmap, nil
}

// AppendRoadmap adds s to the "roadmap" field.
func (m *CareerGoalMutation) AppendRoadmap(s []string) {
	m.appendroadmap = append(m.appendroadmap, s...)
}

// AppendedRoadmap returns the list of values that were appended to the "roadmap" field in this mutation.
func (m *CareerGoalMutation) AppendedRoadmap() ([]string, bool) {
	if len(m.appendroadmap) == 0 {
		return nil, false
	}
	return m.appendroadmap, true
}

// ClearRoadmap clears the value of the "roadmap" field.
func (m *CareerGoalMutation) ClearRoadmap() {
	m.roadmap = nil
	m.appendroadmap = nil
	m.clearedFields[careergoal.FieldRoadmap] = struct{}{}
}

// RoadmapCleared returns if the "roadmap" field was cleared in this mutation.
func (m *CareerGoalMutation) RoadmapCleared() bool {
	_, ok := m.clearedFields[careergoal.FieldRoadmap]
	return ok
}

// ResetRoadmap resets all changes to the "roadmap" field.
func (m *CareerGoalMutation) ResetRoadmap() {
	m.roadmap = nil
	m.appendroadmap = nil
	delete(m.clearedFields, careergoal.FieldRoadmap)
}

// SetMiniProjects sets the "mini_projects" field.
func (m *CareerGoalMutation) SetMiniProjects(s []string) {
	m.mini_projects = &s
	m.appendmini_projects = nil
}

// MiniProjects returns the value of the "mini_projects" field in the mutation.
func (m *CareerGoalMutation) MiniProjects() (r []string, exists bool) {
	v := m.mini_projects
	if v == nil {
		return
	}
	return *v, true
}

// OldMiniProjects returns the old "mini_projects" field's value of the CareerGoal entity.
// If the CareerGoal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CareerGoalMutation) OldMiniProjects(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMiniProjects is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMiniProjects requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMiniProjects: %w", err)
	}
	return oldValue.MiniProjects, nil
}

// AppendMiniProjects adds s to the "mini_projects" field.
func (m *CareerGoalMutation) AppendMiniProjects(s []string) {
	m.appendmini_projects = append(m.appendmini_projects, s...)
}

// AppendedMiniProjects returns the list of values that were appended to the "mini_projects" field in this mutation.
func (m *CareerGoalMutation) AppendedMiniProjects() ([]string, bool) {
	if len(m.appendmini_projects) == 0 {
		return nil, false
	}
	return m.appendmini_projects, true
}

// ClearMiniProjects clears the value of the "mini_projects" field.
func (m *CareerGoalMutation) ClearMiniProjects() {
	m.mini_projects = nil
	m.appendmini_projects = nil
	m.clearedFields[careergoal.FieldMiniProjects] = struct{}{}
}

// MiniProjectsCleared returns if the "mini_projects" field was cleared in this mutation.
func (m *CareerGoalMutation) MiniProjectsCleared() bool {
	_, ok := m.clearedFields[careergoal.FieldMiniProjects]
	return ok
}

// ResetMiniProjects resets all changes to the "mini_projects" field.
func (m *CareerGoalMutation) ResetMiniProjects() {
	m.mini_projects = nil
	m.appendmini_projects = nil
	delete(m.clearedFields, careergoal.FieldMiniProjects)
}

// SetCertifications sets the "certifications" field.
func (m *CareerGoalMutation) SetCertifications(s []string) {
	m.certifications = &s
	m.appendcertifications = nil
}

// Certifications returns the value of the "certifications" field in the mutation.
func (m *CareerGoalMutation) Certifications() (r []string, exists bool) {
	v := m.certifications
	if v == nil {
		return
	}
	return *v, true
}

// OldCertifications returns the old "certifications" field's value of the CareerGoal entity.
// If the CareerGoal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CareerGoalMutation) OldCertifications(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCertifications is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCertifications requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCertifications: %w", err)
	}
	return oldValue.Certifications, nil
}

// AppendCertifications adds s to the "certifications" field.
func (m *CareerGoalMutation) AppendCertifications(s []string) {
	m.appendcertifications = append(m.appendcertifications, s...)
}

// AppendedCertifications returns the list of values that were appended to the "certifications" field in this mutation.
func (m *CareerGoalMutation) AppendedCertifications() ([]string, bool) {
	if len(m.appendcertifications) == 0 {
		return nil, false
	}
	return m.appendcertifications, true
}

// ClearCertifications clears the value of the "certifications" field.
func (m *CareerGoalMutation) ClearCertifications() {
	m.certifications = nil
	m.appendcertifications = nil
	m.clearedFields[careergoal.FieldCertifications] = struct{}{}
}

// CertificationsCleared returns if the "certifications" field was cleared in this mutation.
func (m *CareerGoalMutation) CertificationsCleared() bool {
	_, ok := m.clearedFields[careergoal.FieldCertifications]
	return ok
}

// ResetCertifications resets all changes to the "certifications" field.
func (m *CareerGoalMutation) ResetCertifications() {
	m.certifications = nil
	m.appendcertifications = nil
	delete(m.clearedFields, careergoal.FieldCertifications)
}

// SetReadinessScore sets the "readiness_score" field.
func (m *CareerGoalMutation) SetReadinessScore(f float64) {
	m.readiness_score = &f
	m.addreadiness_score = nil
}

// ReadinessScore returns the value of the "readiness_score" field in the mutation.
func (m *CareerGoalMutation) ReadinessScore() (r float64, exists bool) {
	v := m.readiness_score
	if v == nil {
		return
	}
	return *v, true
}

// OldReadinessScore returns the old "readiness_score" field's value of the CareerGoal entity.
// If the CareerGoal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CareerGoalMutation) OldReadinessScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReadinessScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReadinessScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReadinessScore: %w", err)
	}
	return oldValue.ReadinessScore, nil
}

// AddReadinessScore adds f to the "readiness_score" field.
func (m *CareerGoalMutation) AddReadinessScore(f float64) {
	if m.addreadiness_score != nil {
		*m.addreadiness_score += f
	} else {
		m.addreadiness_score = &f
	}
}

// AddedReadinessScore returns the value that was added to the "readiness_score" field in this mutation.
func (m *CareerGoalMutation) AddedReadinessScore() (r float64, exists bool) {
	v := m.addreadiness_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetReadinessScore resets all changes to the "readiness_score" field.
func (m *CareerGoalMutation) ResetReadinessScore() {
	m.readiness_score = nil
	m.addreadiness_score = nil
}

// SetGeneratedAt sets the "generated_at" field.
func (m *CareerGoalMutation) SetGeneratedAt(t time.Time) {
	m.generated_at = &t
}

// GeneratedAt returns the value of the "generated_at" field in the mutation.
func (m *CareerGoalMutation) GeneratedAt() (r time.Time, exists bool) {
	v := m.generated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldGeneratedAt returns the old "generated_at" field's value of the CareerGoal entity.
// If the CareerGoal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CareerGoalMutation) OldGeneratedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGeneratedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGeneratedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGeneratedAt: %w", err)
	}
	return oldValue.GeneratedAt, nil
}

// ResetGeneratedAt resets all changes to the "generated_at" field.
func (m *CareerGoalMutation) ResetGeneratedAt() {
	m.generated_at = nil
}

// Where appends a list predicates to the CareerGoalMutation builder.
func (m *CareerGoalMutation) Where(ps ...predicate.CareerGoal) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CareerGoalMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CareerGoalMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CareerGoal, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CareerGoalMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CareerGoalMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CareerGoal).
func (m *CareerGoalMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CareerGoalMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.user_id != nil {
		fields = append(fields, careergoal.FieldUserID)
	}
	if m.target_role != nil {
		fields = append(fields, careergoal.FieldTargetRole)
	}
	if m.industry_skills != nil {
		fields = append(fields, careergoal.FieldIndustrySkills)
	}
	if m.roadmap != nil {
		fields = append(fields, careergoal.FieldRoadmap)
	}
	if m.mini_projects != nil {
		fields = append(fields, careergoal.FieldMiniProjects)
	}
	if m.certifications != nil {
		fields = append(fields, careergoal.FieldCertifications)
	}
	if m.readiness_score != nil {
		fields = append(fields, careergoal.FieldReadinessScore)
	}
	if m.generated_at != nil {
		fields = append(fields, careergoal.FieldGeneratedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CareerGoalMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case careergoal.FieldUserID:
		return m.UserID()
	case careergoal.FieldTargetRole:
		return m.TargetRole()
	case careergoal.FieldIndustrySkills:
		return m.IndustrySkills()
	case careergoal.FieldRoadmap:
		return m.Roadmap()
	case careergoal.FieldMiniProjects:
		return m.MiniProjects()
	case careergoal.FieldCertifications:
		return m.Certifications()
	case careergoal.FieldReadinessScore:
		return m.ReadinessScore()
	case careergoal.FieldGeneratedAt:
		return m.GeneratedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CareerGoalMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case careergoal.FieldUserID:
		return m.OldUserID(ctx)
	case careergoal.FieldTargetRole:
		return m.OldTargetRole(ctx)
	case careergoal.FieldIndustrySkills:
		return m.OldIndustrySkills(ctx)
	case careergoal.FieldRoadmap:
		return m.OldRoadmap(ctx)
	case careergoal.FieldMiniProjects:
		return m.OldMiniProjects(ctx)
	case careergoal.FieldCertifications:
		return m.OldCertifications(ctx)
	case careergoal.FieldReadinessScore:
		return m.OldReadinessScore(ctx)
	case careergoal.FieldGeneratedAt:
		return m.OldGeneratedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CareerGoal field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CareerGoalMutation) SetField(name string, value ent.Value) error {
	switch name {
	case careergoal.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case careergoal.FieldTargetRole:
		v, ok := value.(careergoal.TargetRole)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetRole(v)
		return nil
	case careergoal.FieldIndustrySkills:
		v, ok := value.(map[string]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIndustrySkills(v)
		return nil
	case careergoal.FieldRoadmap:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoadmap(v)
		return nil
	case careergoal.FieldMiniProjects:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMiniProjects(v)
		return nil
	case careergoal.FieldCertifications:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCertifications(v)
		return nil
	case careergoal.FieldReadinessScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReadinessScore(v)
		return nil
	case careergoal.FieldGeneratedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGeneratedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CareerGoal field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CareerGoalMutation) AddedFields() []string {
	var fields []string
	if m.adduser_id != nil {
		fields = append(fields, careergoal.FieldUserID)
	}
	if m.addreadiness_score != nil {
		fields = append(fields, careergoal.FieldReadinessScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CareerGoalMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case careergoal.FieldUserID:
		return m.AddedUserID()
	case careergoal.FieldReadinessScore:
		return m.AddedReadinessScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CareerGoalMutation) AddField(name string, value ent.Value) error {
	switch name {
	case careergoal.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	case careergoal.FieldReadinessScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReadinessScore(v)
		return nil
	}
	return fmt.Errorf("unknown CareerGoal numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CareerGoalMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(careergoal.FieldIndustrySkills) {
		fields = append(fields, careergoal.FieldIndustrySkills)
	}
	if m.FieldCleared(careergoal.FieldRoadmap) {
		fields = append(fields, careergoal.FieldRoadmap)
	}
	if m.FieldCleared(careergoal.FieldMiniProjects) {
		fields = append(fields, careergoal.FieldMiniProjects)
	}
	if m.FieldCleared(careergoal.FieldCertifications) {
		fields = append(fields, careergoal.FieldCertifications)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CareerGoalMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CareerGoalMutation) ClearField(name string) error {
	switch name {
	case careergoal.FieldIndustrySkills:
		m.ClearIndustrySkills()
		return nil
	case careergoal.FieldRoadmap:
		m.ClearRoadmap()
		return nil
	case careergoal.FieldMiniProjects:
		m.ClearMiniProjects()
		return nil
	case careergoal.FieldCertifications:
		m.ClearCertifications()
		return nil
	}
	return fmt.Errorf("unknown CareerGoal nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CareerGoalMutation) ResetField(name string) error {
	switch name {
	case careergoal.FieldUserID:
		m.ResetUserID()
		return nil
	case careergoal.FieldTargetRole:
		m.ResetTargetRole()
		return nil
	case careergoal.FieldIndustrySkills:
		m.ResetIndustrySkills()
		return nil
	case careergoal.FieldRoadmap:
		m.ResetRoadmap()
		return nil
	case careergoal.FieldMiniProjects:
		m.ResetMiniProjects()
		return nil
	case careergoal.FieldCertifications:
		m.ResetCertifications()
		return nil
	case careergoal.FieldReadinessScore:
		m.ResetReadinessScore()
		return nil
	case careergoal.FieldGeneratedAt:
		m.ResetGeneratedAt()
		return nil
	}
	return fmt.Errorf("unknown CareerGoal field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CareerGoalMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CareerGoalMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CareerGoalMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CareerGoalMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CareerGoalMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CareerGoalMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CareerGoalMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CareerGoal unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CareerGoalMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CareerGoal edge %s", name)
}

// LabLogMutation represents an operation that mutates the LabLog nodes in the graph.
type LabLogMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	user_id              *int
	adduser_id           *int
	lab_type             *string
	session_id           *string
	decision_chain       *[]map[string]interface{}
	appenddecision_chain []map[string]interface{}
	outcome              *string
	score                *float64
	addscore             *float64
	error_count          *int
	adderror_count       *int
	started_at           *time.Time
	completed_at         *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*LabLog, error)
	predicates           []predicate.LabLog
}

var _ ent.Mutation = (*LabLogMutation)(nil)

// lablogOption allows management of the mutation configuration using functional options.
type lablogOption func(*LabLogMutation)

// newLabLogMutation creates new mutation for the LabLog entity.
func newLabLogMutation(c config, op Op, opts ...lablogOption) *LabLogMutation {
	m := &LabLogMutation{
		config:        c,
		op:            op,
		typ:           TypeLabLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLabLogID sets the ID field of the mutation.
func withLabLogID(id int) lablogOption {
	return func(m *LabLogMutation) {
		var (
			err   error
			once  sync.Once
			value *LabLog
		)
		m.oldValue = func(ctx context.Context) (*LabLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LabLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLabLog sets the old LabLog of the mutation.
func withLabLog(node *LabLog) lablogOption {
	return func(m *LabLogMutation) {
		m.oldValue = func(context.Context) (*LabLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LabLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LabLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LabLogMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LabLogMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LabLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *LabLogMutation) SetUserID(i int) {
	m.user_id = &i
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *LabLogMutation) UserID() (r int, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the LabLog entity.
// If the LabLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabLogMutation) OldUserID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// AddUserID adds i to the "user_id" field.
func (m *LabLogMutation) AddUserID(i int) {
	if m.adduser_id != nil {
		*m.adduser_id += i
	} else {
		m.adduser_id = &i
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *LabLogMutation) AddedUserID() (r int, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserID resets all changes to the "user_id" field.
func (m *LabLogMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
}

// SetLabType sets the "lab_type" field.
func (m *LabLogMutation) SetLabType(s string) {
	m.lab_type = &s
}

// LabType returns the value of the "lab_type" field in the mutation.
func (m *LabLogMutation) LabType() (r string, exists bool) {
	v := m.lab_type
	if v == nil {
		return
	}
	return *v, true
}

// OldLabType returns the old "lab_type" field's value of the LabLog entity.
// If the LabLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabLogMutation) OldLabType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLabType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLabType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLabType: %w", err)
	}
	return oldValue.LabType, nil
}

// ResetLabType resets all changes to the "lab_type" field.
func (m *LabLogMutation) ResetLabType() {
	m.lab_type = nil
}

// SetSessionID sets the "session_id" field.
func (m *LabLogMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *LabLogMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the LabLog entity.
// If the LabLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabLogMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *LabLogMutation) ResetSessionID() {
	m.session_id = nil
}

// SetDecisionChain sets the "decision_chain" field.
func (m *LabLogMutation) SetDecisionChain(value []map[string]interface{}) {
	m.decision_chain = &value
	m.appenddecision_chain = nil
}

// DecisionChain returns the value of the "decision_chain" field in the mutation.
func (m *LabLogMutation) DecisionChain() (r []map[string]interface{}, exists bool) {
	v := m.decision_chain
	if v == nil {
		return
	}
	return *v, true
}

// OldDecisionChain returns the old "decision_chain" field's value of the LabLog entity.
// If the LabLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabLogMutation) OldDecisionChain(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecisionChain is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecisionChain requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecisionChain: %w", err)
	}
	return oldValue.DecisionChain, nil
}

// AppendDecisionChain adds value to the "decision_chain" field.
func (m *LabLogMutation) AppendDecisionChain(value []map[string]interface{}) {
	m.appenddecision_chain = append(m.appenddecision_chain, value...)
}

// AppendedDecisionChain returns the list of values that were appended to the "decision_chain" field in this mutation.
func (m *LabLogMutation) AppendedDecisionChain() ([]map[string]interface{}, bool) {
	if len(m.appenddecision_chain) == 0 {
		return nil, false
	}
	return m.appenddecision_chain, true
}

// ClearDecisionChain clears the value of the "decision_chain" field.
func (m *LabLogMutation) ClearDecisionChain() {
	m.decision_chain = nil
	m.appenddecision_chain = nil
	m.clearedFields[lablog.FieldDecisionChain] = struct{}{}
}

// DecisionChainCleared returns if the "decision_chain" field was cleared in this mutation.
func (m *LabLogMutation) DecisionChainCleared() bool {
	_, ok := m.clearedFields[lablog.FieldDecisionChain]
	return ok
}

// ResetDecisionChain resets all changes to the "decision_chain" field.
func (m *LabLogMutation) ResetDecisionChain() {
	m.decision_chain = nil
	m.appenddecision_chain = nil
	delete(m.clearedFields, lablog.FieldDecisionChain)
}

// SetOutcome sets the "outcome" field.
func (m *LabLogMutation) SetOutcome(s string) {
	m.outcome = &s
}

// Outcome returns the value of the "outcome" field in the mutation.
func (m *LabLogMutation) Outcome() (r string, exists bool) {
	v := m.outcome
	if v == nil {
		return
	}
	return *v, true
}

// OldOutcome returns the old "outcome" field's value of the LabLog entity.
// If the LabLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabLogMutation) OldOutcome(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutcome is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutcome requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutcome: %w", err)
	}
	return oldValue.Outcome, nil
}

// ResetOutcome resets all changes to the "outcome" field.
func (m *LabLogMutation) ResetOutcome() {
	m.outcome = nil
}

// SetScore sets the "score" field.
func (m *LabLogMutation) SetScore(f float64) {
	m.score = &f
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *LabLogMutation) Score() (r float64, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the LabLog entity.
// If the LabLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabLogMutation) OldScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds f to the "score" field.
func (m *LabLogMutation) AddScore(f float64) {
	if m.addscore != nil {
		*m.addscore += f
	} else {
		m.addscore = &f
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *LabLogMutation) AddedScore() (r float64, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *LabLogMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetErrorCount sets the "error_count" field.
func (m *LabLogMutation) SetErrorCount(i int) {
	m.error_count = &i
	m.adderror_count = nil
}

// ErrorCount returns the value of the "error_count" field in the mutation.
func (m *LabLogMutation) ErrorCount() (r int, exists bool) {
	v := m.error_count
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorCount returns the old "error_count" field's value of the LabLog entity.
// If the LabLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabLogMutation) OldErrorCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorCount: %w", err)
	}
	return oldValue.ErrorCount, nil
}

// AddErrorCount adds i to the "error_count" field.
func (m *LabLogMutation) AddErrorCount(i int) {
	if m.adderror_count != nil {
		*m.adderror_count += i
	} else {
		m.adderror_count = &i
	}
}

// AddedErrorCount returns the value that was added to the "error_count" field in this mutation.
func (m *LabLogMutation) AddedErrorCount() (r int, exists bool) {
	v := m.adderror_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetErrorCount resets all changes to the "error_count" field.
func (m *LabLogMutation) ResetErrorCount() {
	m.error_count = nil
	m.adderror_count = nil
}

// SetStartedAt sets the "started_at" field.
func (m *LabLogMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *LabLogMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the LabLog entity.
// If the LabLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabLogMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *LabLogMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *LabLogMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *LabLogMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the LabLog entity.
// If the LabLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabLogMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *LabLogMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[lablog.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *LabLogMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[lablog.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *LabLogMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, lablog.FieldCompletedAt)
}

// Where appends a list predicates to the LabLogMutation builder.
func (m *LabLogMutation) Where(ps ...predicate.LabLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LabLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LabLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LabLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LabLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LabLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LabLog).
func (m *LabLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LabLogMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.user_id != nil {
		fields = append(fields, lablog.FieldUserID)
	}
	if m.lab_type != nil {
		fields = append(fields, lablog.FieldLabType)
	}
	if m.session_id != nil {
		fields = append(fields, lablog.FieldSessionID)
	}
	if m.decision_chain != nil {
		fields = append(fields, lablog.FieldDecisionChain)
	}
	if m.outcome != nil {
		fields = append(fields, lablog.FieldOutcome)
	}
	if m.score != nil {
		fields = append(fields, lablog.FieldScore)
	}
	if m.error_count != nil {
		fields = append(fields, lablog.FieldErrorCount)
	}
	if m.started_at != nil {
		fields = append(fields, lablog.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, lablog.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LabLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case lablog.FieldUserID:
		return m.UserID()
	case lablog.FieldLabType:
		return m.LabType()
	case lablog.FieldSessionID:
		return m.SessionID()
	case lablog.FieldDecisionChain:
		return m.DecisionChain()
	case lablog.FieldOutcome:
		return m.Outcome()
	case lablog.FieldScore:
		return m.Score()
	case lablog.FieldErrorCount:
		return m.ErrorCount()
	case lablog.FieldStartedAt:
		return m.StartedAt()
	case lablog.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LabLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case lablog.FieldUserID:
		return m.OldUserID(ctx)
	case lablog.FieldLabType:
		return m.OldLabType(ctx)
	case lablog.FieldSessionID:
		return m.OldSessionID(ctx)
	case lablog.FieldDecisionChain:
		return m.OldDecisionChain(ctx)
	case lablog.FieldOutcome:
		return m.OldOutcome(ctx)
	case lablog.FieldScore:
		return m.OldScore(ctx)
	case lablog.FieldErrorCount:
		return m.OldErrorCount(ctx)
	case lablog.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case lablog.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LabLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LabLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case lablog.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case lablog.FieldLabType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLabType(v)
		return nil
	case lablog.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case lablog.FieldDecisionChain:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecisionChain(v)
		return nil
	case lablog.FieldOutcome:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutcome(v)
		return nil
	case lablog.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case lablog.FieldErrorCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorCount(v)
		return nil
	case lablog.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case lablog.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LabLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LabLogMutation) AddedFields() []string {
	var fields []string
	if m.adduser_id != nil {
		fields = append(fields, lablog.FieldUserID)
	}
	if m.addscore != nil {
		fields = append(fields, lablog.FieldScore)
	}
	if m.adderror_count != nil {
		fields = append(fields, lablog.FieldErrorCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LabLogMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case lablog.FieldUserID:
		return m.AddedUserID()
	case lablog.FieldScore:
		return m.AddedScore()
	case lablog.FieldErrorCount:
		return m.AddedErrorCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LabLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	case lablog.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	case lablog.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	case lablog.FieldErrorCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddErrorCount(v)
		return nil
	}
	return fmt.Errorf("unknown LabLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LabLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(lablog.FieldDecisionChain) {
		fields = append(fields, lablog.FieldDecisionChain)
	}
	if m.FieldCleared(lablog.FieldCompletedAt) {
		fields = append(fields, lablog.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LabLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LabLogMutation) ClearField(name string) error {
	switch name {
	case lablog.FieldDecisionChain:
		m.ClearDecisionChain()
		return nil
	case lablog.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown LabLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LabLogMutation) ResetField(name string) error {
	switch name {
	case lablog.FieldUserID:
		m.ResetUserID()
		return nil
	case lablog.FieldLabType:
		m.ResetLabType()
		return nil
	case lablog.FieldSessionID:
		m.ResetSessionID()
		return nil
	case lablog.FieldDecisionChain:
		m.ResetDecisionChain()
		return nil
	case lablog.FieldOutcome:
		m.ResetOutcome()
		return nil
	case lablog.FieldScore:
		m.ResetScore()
		return nil
	case lablog.FieldErrorCount:
		m.ResetErrorCount()
		return nil
	case lablog.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case lablog.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown LabLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LabLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LabLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LabLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LabLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LabLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LabLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LabLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LabLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LabLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LabLog edge %s", name)
}

// QuizResultMutation represents an operation that mutates the QuizResult nodes in the graph.
type QuizResultMutation struct {
	config
	op              Op
	typ             string
	id              *int
	user_id         *int
	adduser_id      *int
	topic           *string
	question_type   *string
	question_data   *map[string]interface{}
	student_answer  *string
	correct_answer  *string
	is_correct      *bool
	score           *float64
	addscore        *float64
	llm_explanation *string
	attempted_at    *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*QuizResult, error)
	predicates      []predicate.QuizResult
}

var _ ent.Mutation = (*QuizResultMutation)(nil)

// quizresultOption allows management of the mutation configuration using functional options.
type quizresultOption func(*QuizResultMutation)

// newQuizResultMutation creates new mutation for the QuizResult entity.
func newQuizResultMutation(c config, op Op, opts ...quizresultOption) *QuizResultMutation {
	m := &QuizResultMutation{
		config:        c,
		op:            op,
		typ:           TypeQuizResult,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuizResultID sets the ID field of the mutation.
func withQuizResultID(id int) quizresultOption {
	return func(m *QuizResultMutation) {
		var (
			err   error
			once  sync.Once
			value *QuizResult
		)
		m.oldValue = func(ctx context.Context) (*QuizResult, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QuizResult.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuizResult sets the old QuizResult of the mutation.
func withQuizResult(node *QuizResult) quizresultOption {
	return func(m *QuizResultMutation) {
		m.oldValue = func(context.Context) (*QuizResult, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuizResultMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuizResultMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuizResultMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuizResultMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QuizResult.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *QuizResultMutation) SetUserID(i int) {
	m.user_id = &i
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *QuizResultMutation) UserID() (r int, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the QuizResult entity.
// If the QuizResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizResultMutation) OldUserID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// AddUserID adds i to the "user_id" field.
func (m *QuizResultMutation) AddUserID(i int) {
	if m.adduser_id != nil {
		*m.adduser_id += i
	} else {
		m.adduser_id = &i
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *QuizResultMutation) AddedUserID() (r int, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserID resets all changes to the "user_id" field.
func (m *QuizResultMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
}

// SetTopic sets the "topic" field.
func (m *QuizResultMutation) SetTopic(s string) {
	m.topic = &s
}

// Topic returns the value of the "topic" field in the mutation.
func (m *QuizResultMutation) Topic() (r string, exists bool) {
	v := m.topic
	if v == nil {
		return
	}
	return *v, true
}

// OldTopic returns the old "topic" field's value of the QuizResult entity.
// If the QuizResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizResultMutation) OldTopic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopic: %w", err)
	}
	return oldValue.Topic, nil
}

// ResetTopic resets all changes to the "topic" field.
func (m *QuizResultMutation) ResetTopic() {
	m.topic = nil
}

// SetQuestionType sets the "question_type" field.
func (m *QuizResultMutation) SetQuestionType(s string) {
	m.question_type = &s
}

// QuestionType returns the value of the "question_type" field in the mutation.
func (m *QuizResultMutation) QuestionType() (r string, exists bool) {
	v := m.question_type
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionType returns the old "question_type" field's value of the QuizResult entity.
// If the QuizResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizResultMutation) OldQuestionType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionType: %w", err)
	}
	return oldValue.QuestionType, nil
}

// ResetQuestionType resets all changes to the "question_type" field.
func (m *QuizResultMutation) ResetQuestionType() {
	m.question_type = nil
}

// SetQuestionData sets the "question_data" field.
func (m *QuizResultMutation) SetQuestionData(value map[string]interface{}) {
	m.question_data = &value
}

// QuestionData returns the value of the "question_data" field in the mutation.
func (m *QuizResultMutation) QuestionData() (r map[string]interface{}, exists bool) {
	v := m.question_data
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionData returns the old "question_data" field's value of the QuizResult entity.
// If the QuizResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizResultMutation) OldQuestionData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionData: %w", err)
	}
	return oldValue.QuestionData, nil
}

// ClearQuestionData clears the value of the "question_data" field.
func (m *QuizResultMutation) ClearQuestionData() {
	m.question_data = nil
	m.clearedFields[quizresult.FieldQuestionData] = struct{}{}
}

// QuestionDataCleared returns if the "question_data" field was cleared in this mutation.
func (m *QuizResultMutation) QuestionDataCleared() bool {
	_, ok := m.clearedFields[quizresult.FieldQuestionData]
	return ok
}

// ResetQuestionData resets all changes to the "question_data" field.
func (m *QuizResultMutation) ResetQuestionData() {
	m.question_data = nil
	delete(m.clearedFields, quizresult.FieldQuestionData)
}

// SetStudentAnswer sets the "student_answer" field.
func (m *QuizResultMutation) SetStudentAnswer(s string) {
	m.student_answer = &s
}

// StudentAnswer returns the value of the "student_answer" field in the mutation.
func (m *QuizResultMutation) StudentAnswer() (r string, exists bool) {
	v := m.student_answer
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentAnswer returns the old "student_answer" field's value of the QuizResult entity.
// If the QuizResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizResultMutation) OldStudentAnswer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentAnswer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentAnswer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentAnswer: %w", err)
	}
	return oldValue.StudentAnswer, nil
}

// ClearStudentAnswer clears the value of the "student_answer" field.
func (m *QuizResultMutation) ClearStudentAnswer() {
	m.student_answer = nil
	m.clearedFields[quizresult.FieldStudentAnswer] = struct{}{}
}

// StudentAnswerCleared returns if the "student_answer" field was cleared in this mutation.
func (m *QuizResultMutation) StudentAnswerCleared() bool {
	_, ok := m.clearedFields[quizresult.FieldStudentAnswer]
	return ok
}

// ResetStudentAnswer resets all changes to the "student_answer" field.
func (m *QuizResultMutation) ResetStudentAnswer() {
	m.student_answer = nil
	delete(m.clearedFields, quizresult.FieldStudentAnswer)
}

// SetCorrectAnswer sets the "correct_answer" field.
func (m *QuizResultMutation) SetCorrectAnswer(s string) {
	m.correct_answer = &s
}

// CorrectAnswer returns the value of the "correct_answer" field in the mutation.
func (m *QuizResultMutation) CorrectAnswer() (r string, exists bool) {
	v := m.correct_answer
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectAnswer returns the old "correct_answer" field's value of the QuizResult entity.
// If the QuizResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizResultMutation) OldCorrectAnswer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectAnswer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectAnswer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectAnswer: %w", err)
	}
	return oldValue.CorrectAnswer, nil
}

// ClearCorrectAnswer clears the value of the "correct_answer" field.
func (m *QuizResultMutation) ClearCorrectAnswer() {
	m.correct_answer = nil
	m.clearedFields[quizresult.FieldCorrectAnswer] = struct{}{}
}

// CorrectAnswerCleared returns if the "correct_answer" field was cleared in this mutation.
func (m *QuizResultMutation) CorrectAnswerCleared() bool {
	_, ok := m.clearedFields[quizresult.FieldCorrectAnswer]
	return ok
}

// ResetCorrectAnswer resets all changes to the "correct_answer" field.
func (m *QuizResultMutation) ResetCorrectAnswer() {
	m.correct_answer = nil
	delete(m.clearedFields, quizresult.FieldCorrectAnswer)
}

// SetIsCorrect sets the "is_correct" field.
func (m *QuizResultMutation) SetIsCorrect(b bool) {
	m.is_correct = &b
}

// IsCorrect returns the value of the "is_correct" field in the mutation.
func (m *QuizResultMutation) IsCorrect() (r bool, exists bool) {
	v := m.is_correct
	if v == nil {
		return
	}
	return *v, true
}

// OldIsCorrect returns the old "is_correct" field's value of the QuizResult entity.
// If the QuizResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizResultMutation) OldIsCorrect(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsCorrect: %w", err)
	}
	return oldValue.IsCorrect, nil
}

// ResetIsCorrect resets all changes to the "is_correct" field.
func (m *QuizResultMutation) ResetIsCorrect() {
	m.is_correct = nil
}

// SetScore sets the "score" field.
func (m *QuizResultMutation) SetScore(f float64) {
	m.score = &f
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *QuizResultMutation) Score() (r float64, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the QuizResult entity.
// If the QuizResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizResultMutation) OldScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds f to the "score" field.
func (m *QuizResultMutation) AddScore(f float64) {
	if m.addscore != nil {
		*m.addscore += f
	} else {
		m.addscore = &f
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *QuizResultMutation) AddedScore() (r float64, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *QuizResultMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetLlmExplanation sets the "llm_explanation" field.
func (m *QuizResultMutation) SetLlmExplanation(s string) {
	m.llm_explanation = &s
}

// LlmExplanation returns the value of the "llm_explanation" field in the mutation.
func (m *QuizResultMutation) LlmExplanation() (r string, exists bool) {
	v := m.llm_explanation
	if v == nil {
		return
	}
	return *v, true
}

// OldLlmExplanation returns the old "llm_explanation" field's value of the QuizResult entity.
// If the QuizResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizResultMutation) OldLlmExplanation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLlmExplanation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLlmExplanation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLlmExplanation: %w", err)
	}
	return oldValue.LlmExplanation, nil
}

// ClearLlmExplanation clears the value of the "llm_explanation" field.
func (m *QuizResultMutation) ClearLlmExplanation() {
	m.llm_explanation = nil
	m.clearedFields[quizresult.FieldLlmExplanation] = struct{}{}
}

// LlmExplanationCleared returns if the "llm_explanation" field was cleared in this mutation.
func (m *QuizResultMutation) LlmExplanationCleared() bool {
	_, ok := m.clearedFields[quizresult.FieldLlmExplanation]
	return ok
}

// ResetLlmExplanation resets all changes to the "llm_explanation" field.
func (m *QuizResultMutation) ResetLlmExplanation() {
	m.llm_explanation = nil
	delete(m.clearedFields, quizresult.FieldLlmExplanation)
}

// SetAttemptedAt sets the "attempted_at" field.
func (m *QuizResultMutation) SetAttemptedAt(t time.Time) {
	m.attempted_at = &t
}

// AttemptedAt returns the value of the "attempted_at" field in the mutation.
func (m *QuizResultMutation) AttemptedAt() (r time.Time, exists bool) {
	v := m.attempted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptedAt returns the old "attempted_at" field's value of the QuizResult entity.
// If the QuizResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizResultMutation) OldAttemptedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptedAt: %w", err)
	}
	return oldValue.AttemptedAt, nil
}

// ResetAttemptedAt resets all changes to the "attempted_at" field.
func (m *QuizResultMutation) ResetAttemptedAt() {
	m.attempted_at = nil
}

// Where appends a list predicates to the QuizResultMutation builder.
func (m *QuizResultMutation) Where(ps ...predicate.QuizResult) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuizResultMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuizResultMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QuizResult, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuizResultMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuizResultMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QuizResult).
func (m *QuizResultMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuizResultMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.user_id != nil {
		fields = append(fields, quizresult.FieldUserID)
	}
	if m.topic != nil {
		fields = append(fields, quizresult.FieldTopic)
	}
	if m.question_type != nil {
		fields = append(fields, quizresult.FieldQuestionType)
	}
	if m.question_data != nil {
		fields = append(fields, quizresult.FieldQuestionData)
	}
	if m.student_answer != nil {
		fields = append(fields, quizresult.FieldStudentAnswer)
	}
	if m.correct_answer != nil {
		fields = append(fields, quizresult.FieldCorrectAnswer)
	}
	if m.is_correct != nil {
		fields = append(fields, quizresult.FieldIsCorrect)
	}
	if m.score != nil {
		fields = append(fields, quizresult.FieldScore)
	}
	if m.llm_explanation != nil {
		fields = append(fields, quizresult.FieldLlmExplanation)
	}
	if m.attempted_at != nil {
		fields = append(fields, quizresult.FieldAttemptedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuizResultMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case quizresult.FieldUserID:
		return m.UserID()
	case quizresult.FieldTopic:
		return m.Topic()
	case quizresult.FieldQuestionType:
		return m.QuestionType()
	case quizresult.FieldQuestionData:
		return m.QuestionData()
	case quizresult.FieldStudentAnswer:
		return m.StudentAnswer()
	case quizresult.FieldCorrectAnswer:
		return m.CorrectAnswer()
	case quizresult.FieldIsCorrect:
		return m.IsCorrect()
	case quizresult.FieldScore:
		return m.Score()
	case quizresult.FieldLlmExplanation:
		return m.LlmExplanation()
	case quizresult.FieldAttemptedAt:
		return m.AttemptedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuizResultMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case quizresult.FieldUserID:
		return m.OldUserID(ctx)
	case quizresult.FieldTopic:
		return m.OldTopic(ctx)
	case quizresult.FieldQuestionType:
		return m.OldQuestionType(ctx)
	case quizresult.FieldQuestionData:
		return m.OldQuestionData(ctx)
	case quizresult.FieldStudentAnswer:
		return m.OldStudentAnswer(ctx)
	case quizresult.FieldCorrectAnswer:
		return m.OldCorrectAnswer(ctx)
	case quizresult.FieldIsCorrect:
		return m.OldIsCorrect(ctx)
	case quizresult.FieldScore:
		return m.OldScore(ctx)
	case quizresult.FieldLlmExplanation:
		return m.OldLlmExplanation(ctx)
	case quizresult.FieldAttemptedAt:
		return m.OldAttemptedAt(ctx)
	}
	return nil, fmt.Errorf("unknown QuizResult field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuizResultMutation) SetField(name string, value ent.Value) error {
	switch name {
	case quizresult.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case quizresult.FieldTopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopic(v)
		return nil
	case quizresult.FieldQuestionType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionType(v)
		return nil
	case quizresult.FieldQuestionData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionData(v)
		return nil
	case quizresult.FieldStudentAnswer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentAnswer(v)
		return nil
	case quizresult.FieldCorrectAnswer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectAnswer(v)
		return nil
	case quizresult.FieldIsCorrect:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsCorrect(v)
		return nil
	case quizresult.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case quizresult.FieldLlmExplanation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLlmExplanation(v)
		return nil
	case quizresult.FieldAttemptedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptedAt(v)
		return nil
	}
	return fmt.Errorf("unknown QuizResult field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuizResultMutation) AddedFields() []string {
	var fields []string
	if m.adduser_id != nil {
		fields = append(fields, quizresult.FieldUserID)
	}
	if m.addscore != nil {
		fields = append(fields, quizresult.FieldScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuizResultMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case quizresult.FieldUserID:
		return m.AddedUserID()
	case quizresult.FieldScore:
		return m.AddedScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuizResultMutation) AddField(name string, value ent.Value) error {
	switch name {
	case quizresult.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	case quizresult.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	}
	return fmt.Errorf("unknown QuizResult numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuizResultMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(quizresult.FieldQuestionData) {
		fields = append(fields, quizresult.FieldQuestionData)
	}
	if m.FieldCleared(quizresult.FieldStudentAnswer) {
		fields = append(fields, quizresult.FieldStudentAnswer)
	}
	if m.FieldCleared(quizresult.FieldCorrectAnswer) {
		fields = append(fields, quizresult.FieldCorrectAnswer)
	}
	if m.FieldCleared(quizresult.FieldLlmExplanation) {
		fields = append(fields, quizresult.FieldLlmExplanation)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuizResultMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuizResultMutation) ClearField(name string) error {
	switch name {
	case quizresult.FieldQuestionData:
		m.ClearQuestionData()
		return nil
	case quizresult.FieldStudentAnswer:
		m.ClearStudentAnswer()
		return nil
	case quizresult.FieldCorrectAnswer:
		m.ClearCorrectAnswer()
		return nil
	case quizresult.FieldLlmExplanation:
		m.ClearLlmExplanation()
		return nil
	}
	return fmt.Errorf("unknown QuizResult nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuizResultMutation) ResetField(name string) error {
	switch name {
	case quizresult.FieldUserID:
		m.ResetUserID()
		return nil
	case quizresult.FieldTopic:
		m.ResetTopic()
		return nil
	case quizresult.FieldQuestionType:
		m.ResetQuestionType()
		return nil
	case quizresult.FieldQuestionData:
		m.ResetQuestionData()
		return nil
	case quizresult.FieldStudentAnswer:
		m.ResetStudentAnswer()
		return nil
	case quizresult.FieldCorrectAnswer:
		m.ResetCorrectAnswer()
		return nil
	case quizresult.FieldIsCorrect:
		m.ResetIsCorrect()
		return nil
	case quizresult.FieldScore:
		m.ResetScore()
		return nil
	case quizresult.FieldLlmExplanation:
		m.ResetLlmExplanation()
		return nil
	case quizresult.FieldAttemptedAt:
		m.ResetAttemptedAt()
		return nil
	}
	return fmt.Errorf("unknown QuizResult field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuizResultMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuizResultMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuizResultMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuizResultMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuizResultMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuizResultMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuizResultMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown QuizResult unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuizResultMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown QuizResult edge %s", name)
}

// SkillScoreMutation represents an operation that mutates the SkillScore nodes in the graph.
type SkillScoreMutation struct {
	config
	op            Op
	typ           string
	id            *int
	user_id       *int
	adduser_id    *int
	skill_name    *string
	score         *float64
	addscore      *float64
	source        *string
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*SkillScore, error)
	predicates    []predicate.SkillScore
}

var _ ent.Mutation = (*SkillScoreMutation)(nil)

// skillscoreOption allows management of the mutation configuration using functional options.
type skillscoreOption func(*SkillScoreMutation)

// newSkillScoreMutation creates new mutation for the SkillScore entity.
func newSkillScoreMutation(c config, op Op, opts ...skillscoreOption) *SkillScoreMutation {
	m := &SkillScoreMutation{
		config:        c,
		op:            op,
		typ:           TypeSkillScore,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSkillScoreID sets the ID field of the mutation.
func withSkillScoreID(id int) skillscoreOption {
	return func(m *SkillScoreMutation) {
		var (
			err   error
			once  sync.Once
			value *SkillScore
		)
		m.oldValue = func(ctx context.Context) (*SkillScore, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SkillScore.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSkillScore sets the old SkillScore of the mutation.
func withSkillScore(node *SkillScore) skillscoreOption {
	return func(m *SkillScoreMutation) {
		m.oldValue = func(context.Context) (*SkillScore, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SkillScoreMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SkillScoreMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SkillScoreMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SkillScoreMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SkillScore.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *SkillScoreMutation) SetUserID(i int) {
	m.user_id = &i
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *SkillScoreMutation) UserID() (r int, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the SkillScore entity.
// If the SkillScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillScoreMutation) OldUserID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// AddUserID adds i to the "user_id" field.
func (m *SkillScoreMutation) AddUserID(i int) {
	if m.adduser_id != nil {
		*m.adduser_id += i
	} else {
		m.adduser_id = &i
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *SkillScoreMutation) AddedUserID() (r int, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserID resets all changes to the "user_id" field.
func (m *SkillScoreMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
}

// SetSkillName sets the "skill_name" field.
func (m *SkillScoreMutation) SetSkillName(s string) {
	m.skill_name = &s
}

// SkillName returns the value of the "skill_name" field in the mutation.
func (m *SkillScoreMutation) SkillName() (r string, exists bool) {
	v := m.skill_name
	if v == nil {
		return
	}
	return *v, true
}

// OldSkillName returns the old "skill_name" field's value of the SkillScore entity.
// If the SkillScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillScoreMutation) OldSkillName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkillName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkillName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkillName: %w", err)
	}
	return oldValue.SkillName, nil
}

// ResetSkillName resets all changes to the "skill_name" field.
func (m *SkillScoreMutation) ResetSkillName() {
	m.skill_name = nil
}

// SetScore sets the "score" field.
func (m *SkillScoreMutation) SetScore(f float64) {
	m.score = &f
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *SkillScoreMutation) Score() (r float64, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the SkillScore entity.
// If the SkillScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillScoreMutation) OldScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds f to the "score" field.
func (m *SkillScoreMutation) AddScore(f float64) {
	if m.addscore != nil {
		*m.addscore += f
	} else {
		m.addscore = &f
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *SkillScoreMutation) AddedScore() (r float64, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *SkillScoreMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetSource sets the "source" field.
func (m *SkillScoreMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *SkillScoreMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the SkillScore entity.
// If the SkillScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillScoreMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ClearSource clears the value of the "source" field.
func (m *SkillScoreMutation) ClearSource() {
	m.source = nil
	m.clearedFields[skillscore.FieldSource] = struct{}{}
}

// SourceCleared returns if the "source" field was cleared in this mutation.
func (m *SkillScoreMutation) SourceCleared() bool {
	_, ok := m.clearedFields[skillscore.FieldSource]
	return ok
}

// ResetSource resets all changes to the "source" field.
func (m *SkillScoreMutation) ResetSource() {
	m.source = nil
	delete(m.clearedFields, skillscore.FieldSource)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SkillScoreMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SkillScoreMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SkillScore entity.
// If the SkillScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillScoreMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SkillScoreMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the SkillScoreMutation builder.
func (m *SkillScoreMutation) Where(ps ...predicate.SkillScore) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SkillScoreMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SkillScoreMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SkillScore, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SkillScoreMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SkillScoreMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SkillScore).
func (m *SkillScoreMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SkillScoreMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.user_id != nil {
		fields = append(fields, skillscore.FieldUserID)
	}
	if m.skill_name != nil {
		fields = append(fields, skillscore.FieldSkillName)
	}
	if m.score != nil {
		fields = append(fields, skillscore.FieldScore)
	}
	if m.source != nil {
		fields = append(fields, skillscore.FieldSource)
	}
	if m.updated_at != nil {
		fields = append(fields, skillscore.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SkillScoreMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case skillscore.FieldUserID:
		return m.UserID()
	case skillscore.FieldSkillName:
		return m.SkillName()
	case skillscore.FieldScore:
		return m.Score()
	case skillscore.FieldSource:
		return m.Source()
	case skillscore.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SkillScoreMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case skillscore.FieldUserID:
		return m.OldUserID(ctx)
	case skillscore.FieldSkillName:
		return m.OldSkillName(ctx)
	case skillscore.FieldScore:
		return m.OldScore(ctx)
	case skillscore.FieldSource:
		return m.OldSource(ctx)
	case skillscore.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SkillScore field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SkillScoreMutation) SetField(name string, value ent.Value) error {
	switch name {
	case skillscore.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case skillscore.FieldSkillName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkillName(v)
		return nil
	case skillscore.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case skillscore.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case skillscore.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SkillScore field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SkillScoreMutation) AddedFields() []string {
	var fields []string
	if m.adduser_id != nil {
		fields = append(fields, skillscore.FieldUserID)
	}
	if m.addscore != nil {
		fields = append(fields, skillscore.FieldScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SkillScoreMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case skillscore.FieldUserID:
		return m.AddedUserID()
	case skillscore.FieldScore:
		return m.AddedScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SkillScoreMutation) AddField(name string, value ent.Value) error {
	switch name {
	case skillscore.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	case skillscore.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	}
	return fmt.Errorf("unknown SkillScore numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SkillScoreMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(skillscore.FieldSource) {
		fields = append(fields, skillscore.FieldSource)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SkillScoreMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SkillScoreMutation) ClearField(name string) error {
	switch name {
	case skillscore.FieldSource:
		m.ClearSource()
		return nil
	}
	return fmt.Errorf("unknown SkillScore nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SkillScoreMutation) ResetField(name string) error {
	switch name {
	case skillscore.FieldUserID:
		m.ResetUserID()
		return nil
	case skillscore.FieldSkillName:
		m.ResetSkillName()
		return nil
	case skillscore.FieldScore:
		m.ResetScore()
		return nil
	case skillscore.FieldSource:
		m.ResetSource()
		return nil
	case skillscore.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown SkillScore field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SkillScoreMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SkillScoreMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SkillScoreMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SkillScoreMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SkillScoreMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SkillScoreMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SkillScoreMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SkillScore unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SkillScoreMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SkillScore edge %s", name)
}

// TopicMasteryMutation represents an operation that mutates the TopicMastery nodes in the graph.
type TopicMasteryMutation struct {
	config
	op            Op
	typ           string
	id            *int
	user_id       *int
	adduser_id    *int
	topic_name    *string
	attempts      *int
	addattempts   *int
	correct       *int
	addcorrect    *int
	accuracy      *float64
	addaccuracy   *float64
	current_level *topicmastery.CurrentLevel
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*TopicMastery, error)
	predicates    []predicate.TopicMastery
}

var _ ent.Mutation = (*TopicMasteryMutation)(nil)

// topicmasteryOption allows management of the mutation configuration using functional options.
type topicmasteryOption func(*TopicMasteryMutation)

// newTopicMasteryMutation creates new mutation for the TopicMastery entity.
func newTopicMasteryMutation(c config, op Op, opts ...topicmasteryOption) *TopicMasteryMutation {
	m := &TopicMasteryMutation{
		config:        c,
		op:            op,
		typ:           TypeTopicMastery,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTopicMasteryID sets the ID field of the mutation.
func withTopicMasteryID(id int) topicmasteryOption {
	return func(m *TopicMasteryMutation) {
		var (
			err   error
			once  sync.Once
			value *TopicMastery
		)
		m.oldValue = func(ctx context.Context) (*TopicMastery, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TopicMastery.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTopicMastery sets the old TopicMastery of the mutation.
func withTopicMastery(node *TopicMastery) topicmasteryOption {
	return func(m *TopicMasteryMutation) {
		m.oldValue = func(context.Context) (*TopicMastery, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TopicMasteryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TopicMasteryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TopicMasteryMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TopicMasteryMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TopicMastery.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *TopicMasteryMutation) SetUserID(i int) {
	m.user_id = &i
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *TopicMasteryMutation) UserID() (r int, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the TopicMastery entity.
// If the TopicMastery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMasteryMutation) OldUserID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// AddUserID adds i to the "user_id" field.
func (m *TopicMasteryMutation) AddUserID(i int) {
	if m.adduser_id != nil {
		*m.adduser_id += i
	} else {
		m.adduser_id = &i
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *TopicMasteryMutation) AddedUserID() (r int, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserID resets all changes to the "user_id" field.
func (m *TopicMasteryMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
}

// SetTopicName sets the "topic_name" field.
func (m *TopicMasteryMutation) SetTopicName(s string) {
	m.topic_name = &s
}

// TopicName returns the value of the "topic_name" field in the mutation.
func (m *TopicMasteryMutation) TopicName() (r string, exists bool) {
	v := m.topic_name
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicName returns the old "topic_name" field's value of the TopicMastery entity.
// If the TopicMastery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMasteryMutation) OldTopicName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicName: %w", err)
	}
	return oldValue.TopicName, nil
}

// ResetTopicName resets all changes to the "topic_name" field.
func (m *TopicMasteryMutation) ResetTopicName() {
	m.topic_name = nil
}

// SetAttempts sets the "attempts" field.
func (m *TopicMasteryMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *TopicMasteryMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the TopicMastery entity.
// If the TopicMastery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMasteryMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *TopicMasteryMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *TopicMasteryMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *TopicMasteryMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetCorrect sets the "correct" field.
func (m *TopicMasteryMutation) SetCorrect(i int) {
	m.correct = &i
	m.addcorrect = nil
}

// Correct returns the value of the "correct" field in the mutation.
func (m *TopicMasteryMutation) Correct() (r int, exists bool) {
	v := m.correct
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrect returns the old "correct" field's value of the TopicMastery entity.
// If the TopicMastery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMasteryMutation) OldCorrect(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrect: %w", err)
	}
	return oldValue.Correct, nil
}

// AddCorrect adds i to the "correct" field.
func (m *TopicMasteryMutation) AddCorrect(i int) {
	if m.addcorrect != nil {
		*m.addcorrect += i
	} else {
		m.addcorrect = &i
	}
}

// AddedCorrect returns the value that was added to the "correct" field in this mutation.
func (m *TopicMasteryMutation) AddedCorrect() (r int, exists bool) {
	v := m.addcorrect
	if v == nil {
		return
	}
	return *v, true
}

// ResetCorrect resets all changes to the "correct" field.
func (m *TopicMasteryMutation) ResetCorrect() {
	m.correct = nil
	m.addcorrect = nil
}

// SetAccuracy sets the "accuracy" field.
func (m *TopicMasteryMutation) SetAccuracy(f float64) {
	m.accuracy = &f
	m.addaccuracy = nil
}

// Accuracy returns the value of the "accuracy" field in the mutation.
func (m *TopicMasteryMutation) Accuracy() (r float64, exists bool) {
	v := m.accuracy
	if v == nil {
		return
	}
	return *v, true
}

// OldAccuracy returns the old "accuracy" field's value of the TopicMastery entity.
// If the TopicMastery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMasteryMutation) OldAccuracy(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccuracy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccuracy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccuracy: %w", err)
	}
	return oldValue.Accuracy, nil
}

// AddAccuracy adds f to the "accuracy" field.
func (m *TopicMasteryMutation) AddAccuracy(f float64) {
	if m.addaccuracy != nil {
		*m.addaccuracy += f
	} else {
		m.addaccuracy = &f
	}
}

// AddedAccuracy returns the value that was added to the "accuracy" field in this mutation.
func (m *TopicMasteryMutation) AddedAccuracy() (r float64, exists bool) {
	v := m.addaccuracy
	if v == nil {
		return
	}
	return *v, true
}

// ResetAccuracy resets all changes to the "accuracy" field.
func (m *TopicMasteryMutation) ResetAccuracy() {
	m.accuracy = nil
	m.addaccuracy = nil
}

// SetCurrentLevel sets the "current_level" field.
func (m *TopicMasteryMutation) SetCurrentLevel(tl topicmastery.CurrentLevel) {
	m.current_level = &tl
}

// CurrentLevel returns the value of the "current_level" field in the mutation.
func (m *TopicMasteryMutation) CurrentLevel() (r topicmastery.CurrentLevel, exists bool) {
	v := m.current_level
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentLevel returns the old "current_level" field's value of the TopicMastery entity.
// If the TopicMastery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMasteryMutation) OldCurrentLevel(ctx context.Context) (v topicmastery.CurrentLevel, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentLevel: %w", err)
	}
	return oldValue.CurrentLevel, nil
}

// ResetCurrentLevel resets all changes to the "current_level" field.
func (m *TopicMasteryMutation) ResetCurrentLevel() {
	m.current_level = nil
}

// Where appends a list predicates to the TopicMasteryMutation builder.
func (m *TopicMasteryMutation) Where(ps ...predicate.TopicMastery) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TopicMasteryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TopicMasteryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TopicMastery, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TopicMasteryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TopicMasteryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TopicMastery).
func (m *TopicMasteryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TopicMasteryMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.user_id != nil {
		fields = append(fields, topicmastery.FieldUserID)
	}
	if m.topic_name != nil {
		fields = append(fields, topicmastery.FieldTopicName)
	}
	if m.attempts != nil {
		fields = append(fields, topicmastery.FieldAttempts)
	}
	if m.correct != nil {
		fields = append(fields, topicmastery.FieldCorrect)
	}
	if m.accuracy != nil {
		fields = append(fields, topicmastery.FieldAccuracy)
	}
	if m.current_level != nil {
		fields = append(fields, topicmastery.FieldCurrentLevel)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TopicMasteryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case topicmastery.FieldUserID:
		return m.UserID()
	case topicmastery.FieldTopicName:
		return m.TopicName()
	case topicmastery.FieldAttempts:
		return m.Attempts()
	case topicmastery.FieldCorrect:
		return m.Correct()
	case topicmastery.FieldAccuracy:
		return m.Accuracy()
	case topicmastery.FieldCurrentLevel:
		return m.CurrentLevel()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TopicMasteryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case topicmastery.FieldUserID:
		return m.OldUserID(ctx)
	case topicmastery.FieldTopicName:
		return m.OldTopicName(ctx)
	case topicmastery.FieldAttempts:
		return m.OldAttempts(ctx)
	case topicmastery.FieldCorrect:
		return m.OldCorrect(ctx)
	case topicmastery.FieldAccuracy:
		return m.OldAccuracy(ctx)
	case topicmastery.FieldCurrentLevel:
		return m.OldCurrentLevel(ctx)
	}
	return nil, fmt.Errorf("unknown TopicMastery field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TopicMasteryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case topicmastery.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case topicmastery.FieldTopicName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicName(v)
		return nil
	case topicmastery.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case topicmastery.FieldCorrect:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrect(v)
		return nil
	case topicmastery.FieldAccuracy:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccuracy(v)
		return nil
	case topicmastery.FieldCurrentLevel:
		v, ok := value.(topicmastery.CurrentLevel)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentLevel(v)
		return nil
	}
	return fmt.Errorf("unknown TopicMastery field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TopicMasteryMutation) AddedFields() []string {
	var fields []string
	if m.adduser_id != nil {
		fields = append(fields, topicmastery.FieldUserID)
	}
	if m.addattempts != nil {
		fields = append(fields, topicmastery.FieldAttempts)
	}
	if m.addcorrect != nil {
		fields = append(fields, topicmastery.FieldCorrect)
	}
	if m.addaccuracy != nil {
		fields = append(fields, topicmastery.FieldAccuracy)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TopicMasteryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case topicmastery.FieldUserID:
		return m.AddedUserID()
	case topicmastery.FieldAttempts:
		return m.AddedAttempts()
	case topicmastery.FieldCorrect:
		return m.AddedCorrect()
	case topicmastery.FieldAccuracy:
		return m.AddedAccuracy()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TopicMasteryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case topicmastery.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	case topicmastery.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	case topicmastery.FieldCorrect:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorrect(v)
		return nil
	case topicmastery.FieldAccuracy:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAccuracy(v)
		return nil
	}
	return fmt.Errorf("unknown TopicMastery numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TopicMasteryMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TopicMasteryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TopicMasteryMutation) ClearField(name string) error {
	return fmt.Errorf("unknown TopicMastery nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TopicMasteryMutation) ResetField(name string) error {
	switch name {
	case topicmastery.FieldUserID:
		m.ResetUserID()
		return nil
	case topicmastery.FieldTopicName:
		m.ResetTopicName()
		return nil
	case topicmastery.FieldAttempts:
		m.ResetAttempts()
		return nil
	case topicmastery.FieldCorrect:
		m.ResetCorrect()
		return nil
	case topicmastery.FieldAccuracy:
		m.ResetAccuracy()
		return nil
	case topicmastery.FieldCurrentLevel:
		m.ResetCurrentLevel()
		return nil
	}
	return fmt.Errorf("unknown TopicMastery field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TopicMasteryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TopicMasteryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TopicMasteryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TopicMasteryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TopicMasteryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TopicMasteryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TopicMasteryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TopicMastery unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TopicMasteryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TopicMastery edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op            Op
	typ           string
	id            *int
	name          *string
	email         *string
	hashed_pw     *string
	institution   *string
	level         *user.Level
	xp_points     *int
	addxp_points  *int
	created_at    *time.Time
	is_active     *bool
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*User, error)
	predicates    []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id int) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *UserMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *UserMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *UserMutation) ResetName() {
	m.name = nil
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
}

// SetHashedPw sets the "hashed_pw" field.
func (m *UserMutation) SetHashedPw(s string) {
	m.hashed_pw = &s
}

// HashedPw returns the value of the "hashed_pw" field in the mutation.
func (m *UserMutation) HashedPw() (r string, exists bool) {
	v := m.hashed_pw
	if v == nil {
		return
	}
	return *v, true
}

// OldHashedPw returns the old "hashed_pw" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldHashedPw(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHashedPw is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHashedPw requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHashedPw: %w", err)
	}
	return oldValue.HashedPw, nil
}

// ResetHashedPw resets all changes to the "hashed_pw" field.
func (m *UserMutation) ResetHashedPw() {
	m.hashed_pw = nil
}

// SetInstitution sets the "institution" field.
func (m *UserMutation) SetInstitution(s string) {
	m.institution = &s
}

// Institution returns the value of the "institution" field in the mutation.
func (m *UserMutation) Institution() (r string, exists bool) {
	v := m.institution
	if v == nil {
		return
	}
	return *v, true
}

// OldInstitution returns the old "institution" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldInstitution(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstitution is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstitution requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstitution: %w", err)
	}
	return oldValue.Institution, nil
}

// ClearInstitution clears the value of the "institution" field.
func (m *UserMutation) ClearInstitution() {
	m.institution = nil
	m.clearedFields[user.FieldInstitution] = struct{}{}
}

// InstitutionCleared returns if the "institution" field was cleared in this mutation.
func (m *UserMutation) InstitutionCleared() bool {
	_, ok := m.clearedFields[user.FieldInstitution]
	return ok
}

// ResetInstitution resets all changes to the "institution" field.
func (m *UserMutation) ResetInstitution() {
	m.institution = nil
	delete(m.clearedFields, user.FieldInstitution)
}

// SetLevel sets the "level" field.
func (m *UserMutation) SetLevel(u user.Level) {
	m.level = &u
}

// Level returns the value of the "level" field in the mutation.
func (m *UserMutation) Level() (r user.Level, exists bool) {
	v := m.level
	if v == nil {
		return
	}
	return *v, true
}

// OldLevel returns the old "level" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldLevel(ctx context.Context) (v user.Level, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevel: %w", err)
	}
	return oldValue.Level, nil
}

// ResetLevel resets all changes to the "level" field.
func (m *UserMutation) ResetLevel() {
	m.level = nil
}

// SetXpPoints sets the "xp_points" field.
func (m *UserMutation) SetXpPoints(i int) {
	m.xp_points = &i
	m.addxp_points = nil
}

// XpPoints returns the value of the "xp_points" field in the mutation.
func (m *UserMutation) XpPoints() (r int, exists bool) {
	v := m.xp_points
	if v == nil {
		return
	}
	return *v, true
}

// OldXpPoints returns the old "xp_points" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldXpPoints(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldXpPoints is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldXpPoints requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldXpPoints: %w", err)
	}
	return oldValue.XpPoints, nil
}

// AddXpPoints adds i to the "xp_points" field.
func (m *UserMutation) AddXpPoints(i int) {
	if m.addxp_points != nil {
		*m.addxp_points += i
	} else {
		m.addxp_points = &i
	}
}

// AddedXpPoints returns the value that was added to the "xp_points" field in this mutation.
func (m *UserMutation) AddedXpPoints() (r int, exists bool) {
	v := m.addxp_points
	if v == nil {
		return
	}
	return *v, true
}

// ResetXpPoints resets all changes to the "xp_points" field.
func (m *UserMutation) ResetXpPoints() {
	m.xp_points = nil
	m.addxp_points = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetIsActive sets the "is_active" field.
func (m *UserMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *UserMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *UserMutation) ResetIsActive() {
	m.is_active = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.name != nil {
		fields = append(fields, user.FieldName)
	}
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.hashed_pw != nil {
		fields = append(fields, user.FieldHashedPw)
	}
	if m.institution != nil {
		fields = append(fields, user.FieldInstitution)
	}
	if m.level != nil {
		fields = append(fields, user.FieldLevel)
	}
	if m.xp_points != nil {
		fields = append(fields, user.FieldXpPoints)
	}
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.is_active != nil {
		fields = append(fields, user.FieldIsActive)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldName:
		return m.Name()
	case user.FieldEmail:
		return m.Email()
	case user.FieldHashedPw:
		return m.HashedPw()
	case user.FieldInstitution:
		return m.Institution()
	case user.FieldLevel:
		return m.Level()
	case user.FieldXpPoints:
		return m.XpPoints()
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldIsActive:
		return m.IsActive()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldName:
		return m.OldName(ctx)
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldHashedPw:
		return m.OldHashedPw(ctx)
	case user.FieldInstitution:
		return m.OldInstitution(ctx)
	case user.FieldLevel:
		return m.OldLevel(ctx)
	case user.FieldXpPoints:
		return m.OldXpPoints(ctx)
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldIsActive:
		return m.OldIsActive(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldHashedPw:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHashedPw(v)
		return nil
	case user.FieldInstitution:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstitution(v)
		return nil
	case user.FieldLevel:
		v, ok := value.(user.Level)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevel(v)
		return nil
	case user.FieldXpPoints:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetXpPoints(v)
		return nil
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	var fields []string
	if m.addxp_points != nil {
		fields = append(fields, user.FieldXpPoints)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case user.FieldXpPoints:
		return m.AddedXpPoints()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	case user.FieldXpPoints:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddXpPoints(v)
		return nil
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldInstitution) {
		fields = append(fields, user.FieldInstitution)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldInstitution:
		m.ClearInstitution()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldName:
		m.ResetName()
		return nil
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldHashedPw:
		m.ResetHashedPw()
		return nil
	case user.FieldInstitution:
		m.ResetInstitution()
		return nil
	case user.FieldLevel:
		m.ResetLevel()
		return nil
	case user.FieldXpPoints:
		m.ResetXpPoints()
		return nil
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldIsActive:
		m.ResetIsActive()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown User edge %s", name)
}
