package workperiod

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stafftrack/timeclock-backend-go/internal/domain/access"
	"github.com/stafftrack/timeclock-backend-go/internal/domain/employee"
	"github.com/stafftrack/timeclock-backend-go/internal/domain/user"
	"github.com/stafftrack/timeclock-backend-go/internal/domain/workperiod"
)

// fakeWorkPeriodRepo is an in-memory workperiod.Repository. The service
// runs it without a database; inTx falls through to plain calls.
type fakeWorkPeriodRepo struct {
	seq     int
	periods map[string]workperiod.WorkPeriod

	// owners maps employee IDs to owning user IDs, standing in for the
	// join the SQL repository performs.
	owners map[string]string
}

func newFakeWorkPeriodRepo(owners map[string]string) *fakeWorkPeriodRepo {
	return &fakeWorkPeriodRepo{
		periods: make(map[string]workperiod.WorkPeriod),
		owners:  owners,
	}
}

func (f *fakeWorkPeriodRepo) withOwner(w workperiod.WorkPeriod) workperiod.WorkPeriod {
	if owner, ok := f.owners[w.EmployeeID]; ok {
		w.OwnerUserID = &owner
	}
	return w
}

func (f *fakeWorkPeriodRepo) Create(ctx context.Context, w workperiod.WorkPeriod) (workperiod.WorkPeriod, error) {
	f.seq++
	w.ID = fmt.Sprintf("wp-%d", f.seq)
	f.periods[w.ID] = w
	return f.withOwner(w), nil
}

func (f *fakeWorkPeriodRepo) GetByID(ctx context.Context, id string) (workperiod.WorkPeriod, error) {
	w, ok := f.periods[id]
	if !ok {
		return workperiod.WorkPeriod{}, workperiod.ErrWorkPeriodNotFound
	}
	return f.withOwner(w), nil
}

func (f *fakeWorkPeriodRepo) List(ctx context.Context, filter workperiod.Filter) ([]workperiod.WorkPeriod, int64, error) {
	var result []workperiod.WorkPeriod
	for _, w := range f.periods {
		if filter.EmployeeID != nil && w.EmployeeID != *filter.EmployeeID {
			continue
		}
		w = f.withOwner(w)
		if filter.OwnerUserID != nil &&
			(w.OwnerUserID == nil || *w.OwnerUserID != *filter.OwnerUserID) {
			continue
		}
		result = append(result, w)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].StartTime.After(result[j].StartTime)
	})
	return result, int64(len(result)), nil
}

func (f *fakeWorkPeriodRepo) Update(ctx context.Context, w workperiod.WorkPeriod) (workperiod.WorkPeriod, error) {
	if _, ok := f.periods[w.ID]; !ok {
		return workperiod.WorkPeriod{}, workperiod.ErrWorkPeriodNotFound
	}
	f.periods[w.ID] = w
	return f.withOwner(w), nil
}

func (f *fakeWorkPeriodRepo) GetPrevious(ctx context.Context, employeeID string, t time.Time) (*workperiod.WorkPeriod, error) {
	var previous *workperiod.WorkPeriod
	for _, w := range f.periods {
		if w.EmployeeID != employeeID || !w.StartTime.Before(t) {
			continue
		}
		if previous == nil || w.StartTime.After(previous.StartTime) {
			candidate := f.withOwner(w)
			previous = &candidate
		}
	}
	return previous, nil
}

func (f *fakeWorkPeriodRepo) GetNext(ctx context.Context, employeeID string, t time.Time) (*workperiod.WorkPeriod, error) {
	var next *workperiod.WorkPeriod
	for _, w := range f.periods {
		if w.EmployeeID != employeeID || !w.StartTime.After(t) {
			continue
		}
		if next == nil || w.StartTime.Before(next.StartTime) {
			candidate := f.withOwner(w)
			next = &candidate
		}
	}
	return next, nil
}

func (f *fakeWorkPeriodRepo) GetLatest(ctx context.Context, employeeID string) (workperiod.WorkPeriod, error) {
	var latest *workperiod.WorkPeriod
	for _, w := range f.periods {
		if w.EmployeeID != employeeID {
			continue
		}
		if latest == nil || w.StartTime.After(latest.StartTime) {
			candidate := w
			latest = &candidate
		}
	}
	if latest == nil {
		return workperiod.WorkPeriod{}, workperiod.ErrNoWorkPeriods
	}
	return f.withOwner(*latest), nil
}

func (f *fakeWorkPeriodRepo) ListLatest(ctx context.Context, ownerUserID string) ([]workperiod.WorkPeriod, error) {
	latestByEmployee := make(map[string]workperiod.WorkPeriod)
	for _, w := range f.periods {
		current, ok := latestByEmployee[w.EmployeeID]
		if !ok || w.StartTime.After(current.StartTime) {
			latestByEmployee[w.EmployeeID] = w
		}
	}
	var result []workperiod.WorkPeriod
	for _, w := range latestByEmployee {
		w = f.withOwner(w)
		if ownerUserID != "" && (w.OwnerUserID == nil || *w.OwnerUserID != ownerUserID) {
			continue
		}
		result = append(result, w)
	}
	return result, nil
}

func (f *fakeWorkPeriodRepo) LockEmployee(ctx context.Context, employeeID string) error {
	if _, ok := f.owners[employeeID]; !ok {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	f.employees[e.ID] = e
	return e, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.UserID == userID {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(ctx context.Context, filter employee.Filter) ([]employee.Employee, int64, error) {
	var result []employee.Employee
	for _, e := range f.employees {
		result = append(result, e)
	}
	return result, int64(len(result)), nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	f.employees[e.ID] = e
	return e, nil
}

func testUser(id string, role user.Role) *user.User {
	return &user.User{
		ID:         id,
		Privileges: &user.Privileges{UserID: id, Role: role},
	}
}

func newTestService(t *testing.T, start time.Time) (*WorkPeriodService, *fakeWorkPeriodRepo, *func() time.Time) {
	t.Helper()
	owners := map[string]string{"emp1": "u1", "emp2": "u2"}
	repo := newFakeWorkPeriodRepo(owners)
	empRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp1": {ID: "emp1", UserID: "u1", FirstName: "Pat", LastName: "Jones", IsActive: true},
		"emp2": {ID: "emp2", UserID: "u2", FirstName: "Sam", LastName: "Reed", IsActive: true},
	}}

	now := start
	clock := func() time.Time { return now }
	clockPtr := &clock

	svc := NewWorkPeriodService(nil, repo, empRepo).WithClock(func() time.Time {
		return (*clockPtr)()
	})
	return svc, repo, clockPtr
}

func TestClockInClockOut(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, 3, 1, 8, 14, 30, 0, time.UTC)
	svc, _, clock := newTestService(t, start)
	terminal := testUser("term", user.RoleTerminal)

	created, err := svc.ClockIn(ctx, terminal, workperiod.ClockInRequest{EmployeeID: "emp1"})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 8, 14, 0, 0, time.UTC), created.StartTime)
	assert.Nil(t, created.EndTime)

	end := time.Date(2024, 3, 1, 17, 7, 45, 0, time.UTC)
	*clock = func() time.Time { return end }

	closed, err := svc.ClockOut(ctx, terminal, created.ID)
	require.NoError(t, err)
	require.NotNil(t, closed.EndTime)
	assert.Equal(t, time.Date(2024, 3, 1, 17, 7, 0, 0, time.UTC), *closed.EndTime)
}

func TestClockInWhileStillClockedIn(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	svc, _, clock := newTestService(t, start)
	terminal := testUser("term", user.RoleTerminal)

	_, err := svc.ClockIn(ctx, terminal, workperiod.ClockInRequest{EmployeeID: "emp1"})
	require.NoError(t, err)

	later := start.Add(2 * time.Hour)
	*clock = func() time.Time { return later }

	_, err = svc.ClockIn(ctx, terminal, workperiod.ClockInRequest{EmployeeID: "emp1"})
	assert.ErrorIs(t, err, workperiod.ErrOverlapsPrevious)

	// A different employee is unaffected.
	_, err = svc.ClockIn(ctx, terminal, workperiod.ClockInRequest{EmployeeID: "emp2"})
	assert.NoError(t, err)
}

func TestDoubleClockOut(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	svc, _, clock := newTestService(t, start)
	terminal := testUser("term", user.RoleTerminal)

	created, err := svc.ClockIn(ctx, terminal, workperiod.ClockInRequest{EmployeeID: "emp1"})
	require.NoError(t, err)

	end := start.Add(8 * time.Hour)
	*clock = func() time.Time { return end }

	_, err = svc.ClockOut(ctx, terminal, created.ID)
	require.NoError(t, err)

	_, err = svc.ClockOut(ctx, terminal, created.ID)
	assert.ErrorIs(t, err, workperiod.ErrAlreadyClockedOut)
}

func TestClockActionsAreTerminalOnly(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t, time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC))

	for _, actor := range []*user.User{
		testUser("m", user.RoleManager),
		testUser("e", user.RoleEmployee),
	} {
		_, err := svc.ClockIn(ctx, actor, workperiod.ClockInRequest{EmployeeID: "emp1"})
		assert.ErrorIs(t, err, access.ErrDenied)

		_, err = svc.ClockOut(ctx, actor, "wp-1")
		assert.ErrorIs(t, err, access.ErrDenied)
	}
}

func TestClockInUnknownEmployee(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t, time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC))
	terminal := testUser("term", user.RoleTerminal)

	_, err := svc.ClockIn(ctx, terminal, workperiod.ClockInRequest{EmployeeID: "ghost"})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestCreateIsManagerOnly(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 18, 0, 0, 0, time.UTC)
	svc, _, _ := newTestService(t, now)

	startTime := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	endTime := time.Date(2024, 3, 1, 17, 0, 0, 0, time.UTC)
	req := workperiod.CreateWorkPeriodRequest{
		EmployeeID: "emp1",
		StartTime:  &startTime,
		EndTime:    &endTime,
	}

	_, err := svc.Create(ctx, testUser("e", user.RoleEmployee), req)
	assert.ErrorIs(t, err, access.ErrDenied)

	_, err = svc.Create(ctx, testUser("t", user.RoleTerminal), req)
	assert.ErrorIs(t, err, access.ErrDenied)

	created, err := svc.Create(ctx, testUser("m", user.RoleManager), req)
	require.NoError(t, err)
	assert.Equal(t, "emp1", created.EmployeeID)
}

func TestUpdateStartTimeImmutable(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 18, 0, 0, 0, time.UTC)
	svc, _, _ := newTestService(t, now)
	manager := testUser("m", user.RoleManager)

	startTime := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	created, err := svc.Create(ctx, manager, workperiod.CreateWorkPeriodRequest{
		EmployeeID: "emp1",
		StartTime:  &startTime,
	})
	require.NoError(t, err)

	shifted := startTime.Add(time.Hour)
	_, err = svc.Update(ctx, manager, created.ID, workperiod.UpdateWorkPeriodRequest{StartTime: &shifted})
	assert.ErrorIs(t, err, workperiod.ErrStartTimeImmutable)

	// Echoing the stored start while closing the period is fine.
	endTime := time.Date(2024, 3, 1, 17, 0, 0, 0, time.UTC)
	updated, err := svc.Update(ctx, manager, created.ID, workperiod.UpdateWorkPeriodRequest{
		StartTime: &startTime,
		EndTime:   &endTime,
	})
	require.NoError(t, err)
	require.NotNil(t, updated.EndTime)
	assert.Equal(t, endTime, *updated.EndTime)
}

func TestDeleteAlwaysDenied(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t, time.Now())
	assert.ErrorIs(t, svc.Delete(ctx, testUser("m", user.RoleManager), "wp-1"), access.ErrDenied)
	assert.ErrorIs(t, svc.Delete(ctx, testUser("ga", user.RoleAdmin), "wp-1"), access.ErrDenied)
}

func TestLatestScoping(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	svc, _, _ := newTestService(t, start)
	terminal := testUser("term", user.RoleTerminal)

	_, err := svc.ClockIn(ctx, terminal, workperiod.ClockInRequest{EmployeeID: "emp1"})
	require.NoError(t, err)
	_, err = svc.ClockIn(ctx, terminal, workperiod.ClockInRequest{EmployeeID: "emp2"})
	require.NoError(t, err)

	t.Run("batch latest for terminal covers every employee", func(t *testing.T) {
		periods, err := svc.Latest(ctx, terminal, nil)
		require.NoError(t, err)
		assert.Len(t, periods, 2)
	})

	t.Run("batch latest for employee is scoped to own", func(t *testing.T) {
		periods, err := svc.Latest(ctx, testUser("u1", user.RoleEmployee), nil)
		require.NoError(t, err)
		require.Len(t, periods, 1)
		assert.Equal(t, "emp1", periods[0].EmployeeID)
	})

	t.Run("single latest hides other employees' periods", func(t *testing.T) {
		other := "emp2"
		_, err := svc.Latest(ctx, testUser("u1", user.RoleEmployee), &other)
		assert.ErrorIs(t, err, workperiod.ErrNoWorkPeriods)
	})

	t.Run("unknown employee", func(t *testing.T) {
		ghost := "ghost"
		_, err := svc.Latest(ctx, terminal, &ghost)
		assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	})
}

func TestMineIgnoresRequestedScope(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	svc, _, _ := newTestService(t, start)
	terminal := testUser("term", user.RoleTerminal)

	_, err := svc.ClockIn(ctx, terminal, workperiod.ClockInRequest{EmployeeID: "emp1"})
	require.NoError(t, err)
	_, err = svc.ClockIn(ctx, terminal, workperiod.ClockInRequest{EmployeeID: "emp2"})
	require.NoError(t, err)

	periods, total, err := svc.Mine(ctx, testUser("u1", user.RoleEmployee), workperiod.Filter{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, periods, 1)
	assert.Equal(t, "emp1", periods[0].EmployeeID)
}
