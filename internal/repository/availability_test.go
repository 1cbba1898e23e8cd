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
	"gorm.io/gorm"
)

// AvailabilityRepositoryTestSuite tests the AvailabilityRepository
type AvailabilityRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *AvailabilityRepository
	factories     *testutils.FactorySet

	account  *models.Account
	employee *models.Employee
}

// SetupSuite runs before all tests in the suite
func (suite *AvailabilityRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewAvailabilityRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *AvailabilityRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *AvailabilityRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.account = suite.factories.Account.Create()
	suite.Require().NoError(suite.baseTestSuite.DB.Create(suite.account).Error)
	suite.employee = suite.factories.Employee.Create(suite.account.ID)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(suite.employee).Error)
}

// TearDownTest runs after each test
func (suite *AvailabilityRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestUpsertSupersedes tests that writing the same date replaces the record
func (suite *AvailabilityRepositoryTestSuite) TestUpsertSupersedes() {
	date := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	first := suite.factories.Availability.Create(suite.employee.ID, date, models.AvailabilityUnavailable)
	suite.NoError(suite.repo.Upsert(first))

	second := suite.factories.Availability.Partial(suite.employee.ID, date, models.AvailabilityPreferable, "08:00:00", "12:00:00")
	suite.NoError(suite.repo.Upsert(second))

	records, err := suite.repo.GetByEmployeeID(suite.employee.ID)
	suite.NoError(err)
	suite.Len(records, 1, "one record per (employee, date)")
	suite.Equal(models.AvailabilityPreferable, records[0].Status)
	suite.False(records[0].FullDay)
	suite.Equal("08:00:00", records[0].StartTime)
}

// TestGetByAccountForMonth tests the month-scoped roster query
func (suite *AvailabilityRepositoryTestSuite) TestGetByAccountForMonth() {
	inMonth := suite.factories.Availability.Create(suite.employee.ID,
		time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC), models.AvailabilityVacation)
	outOfMonth := suite.factories.Availability.Create(suite.employee.ID,
		time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC), models.AvailabilityVacation)
	suite.NoError(suite.repo.Upsert(inMonth))
	suite.NoError(suite.repo.Upsert(outOfMonth))

	otherAccount := suite.factories.Account.Create()
	suite.Require().NoError(suite.baseTestSuite.DB.Create(otherAccount).Error)
	stranger := suite.factories.Employee.Create(otherAccount.ID)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(stranger).Error)
	strangerRecord := suite.factories.Availability.Create(stranger.ID,
		time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC), models.AvailabilityUnreachable)
	suite.NoError(suite.repo.Upsert(strangerRecord))

	records, err := suite.repo.GetByAccountForMonth(suite.account.ID, 2025, time.March)
	suite.NoError(err)
	suite.Len(records, 1)
	suite.Equal(suite.employee.ID, records[0].EmployeeID)
}

// TestDeleteByEmployeeAndDate tests clearing a calendar cell
func (suite *AvailabilityRepositoryTestSuite) TestDeleteByEmployeeAndDate() {
	date := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	record := suite.factories.Availability.Create(suite.employee.ID, date, models.AvailabilityUnavailable)
	suite.NoError(suite.repo.Upsert(record))

	suite.NoError(suite.repo.DeleteByEmployeeAndDate(suite.employee.ID, date))

	err := suite.repo.DeleteByEmployeeAndDate(suite.employee.ID, date)
	suite.ErrorIs(err, gorm.ErrRecordNotFound, "deleting an empty cell reports not found")
}

// TestDeleteByEmployeeAndDateMissing tests deleting with no record present
func (suite *AvailabilityRepositoryTestSuite) TestDeleteByEmployeeAndDateMissing() {
	err := suite.repo.DeleteByEmployeeAndDate(uuid.New(), time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC))
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestAvailabilityRepositoryTestSuite runs the test suite
func TestAvailabilityRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityRepositoryTestSuite))
}
