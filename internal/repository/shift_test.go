//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"shift-planner-backend/internal/database/models"
	"shift-planner-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// ShiftRepositoryTestSuite tests the ShiftRepository
type ShiftRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ShiftRepository
	factories     *testutils.FactorySet

	account  *models.Account
	employee *models.Employee
}

// SetupSuite runs before all tests in the suite
func (suite *ShiftRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewShiftRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ShiftRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ShiftRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.account = suite.factories.Account.Create()
	suite.Require().NoError(suite.baseTestSuite.DB.Create(suite.account).Error)
	suite.employee = suite.factories.Employee.Create(suite.account.ID)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(suite.employee).Error)
}

// TearDownTest runs after each test
func (suite *ShiftRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *ShiftRepositoryTestSuite) shiftRow(day int) models.Shift {
	start := time.Date(2025, time.March, day, 7, 0, 0, 0, time.UTC)
	return models.Shift{
		AccountID:  suite.account.ID,
		EmployeeID: suite.employee.ID,
		Year:       2025,
		Month:      3,
		Role:       "nurse",
		StartsAt:   start,
		EndsAt:     start.Add(8 * time.Hour),
	}
}

// TestReplaceForPeriod tests that a second write fully replaces the month
func (suite *ShiftRepositoryTestSuite) TestReplaceForPeriod() {
	err := suite.repo.ReplaceForPeriod(suite.account.ID, 2025, 3, []models.Shift{
		suite.shiftRow(3), suite.shiftRow(10),
	})
	suite.NoError(err)

	err = suite.repo.ReplaceForPeriod(suite.account.ID, 2025, 3, []models.Shift{
		suite.shiftRow(17),
	})
	suite.NoError(err)

	shifts, err := suite.repo.GetByPeriod(suite.account.ID, 2025, 3)
	suite.NoError(err)
	suite.Len(shifts, 1)
	suite.Equal(17, shifts[0].StartsAt.Day())
}

// TestReplaceForPeriodEmpty tests clearing a month with an empty write
func (suite *ShiftRepositoryTestSuite) TestReplaceForPeriodEmpty() {
	suite.NoError(suite.repo.ReplaceForPeriod(suite.account.ID, 2025, 3, []models.Shift{suite.shiftRow(3)}))
	suite.NoError(suite.repo.ReplaceForPeriod(suite.account.ID, 2025, 3, nil))

	shifts, err := suite.repo.GetByPeriod(suite.account.ID, 2025, 3)
	suite.NoError(err)
	suite.Empty(shifts)
}

// TestReplaceForPeriodScopedToMonth tests that other months are untouched
func (suite *ShiftRepositoryTestSuite) TestReplaceForPeriodScopedToMonth() {
	february := suite.shiftRow(3)
	february.Month = 2
	february.StartsAt = time.Date(2025, time.February, 3, 7, 0, 0, 0, time.UTC)
	february.EndsAt = february.StartsAt.Add(8 * time.Hour)
	suite.NoError(suite.repo.ReplaceForPeriod(suite.account.ID, 2025, 2, []models.Shift{february}))

	suite.NoError(suite.repo.ReplaceForPeriod(suite.account.ID, 2025, 3, []models.Shift{suite.shiftRow(3)}))
	suite.NoError(suite.repo.ReplaceForPeriod(suite.account.ID, 2025, 3, nil))

	shifts, err := suite.repo.GetByPeriod(suite.account.ID, 2025, 2)
	suite.NoError(err)
	suite.Len(shifts, 1, "replacing March must not touch February")
}

// TestReplaceForPeriodAtomic tests that a failed replace leaves the old rows intact
func (suite *ShiftRepositoryTestSuite) TestReplaceForPeriodAtomic() {
	suite.NoError(suite.repo.ReplaceForPeriod(suite.account.ID, 2025, 3, []models.Shift{suite.shiftRow(3)}))

	// reference a missing employee so the insert violates the foreign key
	bad := suite.shiftRow(10)
	bad.EmployeeID = uuid.New()

	err := suite.repo.ReplaceForPeriod(suite.account.ID, 2025, 3, []models.Shift{suite.shiftRow(17), bad})
	suite.Error(err)

	shifts, err := suite.repo.GetByPeriod(suite.account.ID, 2025, 3)
	suite.NoError(err)
	suite.Len(shifts, 1, "a failed replace must roll back, keeping the previous schedule")
	suite.Equal(3, shifts[0].StartsAt.Day())
}

// TestGetByEmployeeAndPeriod tests the per-employee read
func (suite *ShiftRepositoryTestSuite) TestGetByEmployeeAndPeriod() {
	other := suite.factories.Employee.WithName(suite.account.ID, "Omar")
	suite.Require().NoError(suite.baseTestSuite.DB.Create(other).Error)

	otherShift := suite.shiftRow(10)
	otherShift.EmployeeID = other.ID
	suite.NoError(suite.repo.ReplaceForPeriod(suite.account.ID, 2025, 3, []models.Shift{suite.shiftRow(3), otherShift}))

	shifts, err := suite.repo.GetByEmployeeAndPeriod(suite.employee.ID, 2025, 3)
	suite.NoError(err)
	suite.Len(shifts, 1)
	suite.Equal(suite.employee.ID, shifts[0].EmployeeID)
}

// TestShiftRepositoryTestSuite runs the test suite
func TestShiftRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ShiftRepositoryTestSuite))
}
