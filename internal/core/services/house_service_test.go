package services_test

import (
	"context"
	"testing"

	"github.com/sidharthsanthos/PKRA/internal/apperrors"
	"github.com/sidharthsanthos/PKRA/internal/core/domain"
	portsrepo "github.com/sidharthsanthos/PKRA/internal/core/ports/repositories"
	portssvc "github.com/sidharthsanthos/PKRA/internal/core/ports/services"
	"github.com/sidharthsanthos/PKRA/internal/core/services"
	"github.com/sidharthsanthos/PKRA/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type HouseServiceTestSuite struct {
	suite.Suite
	mockRepo *MockHouseRepository
	service  portssvc.HouseSvcFacade
}

func (suite *HouseServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockHouseRepository)
	suite.service = services.NewHouseService(suite.mockRepo)
}

func (suite *HouseServiceTestSuite) TestCreateHouse_Success() {
	ctx := context.Background()
	phone := "9447000000"
	req := dto.CreateHouseRequest{
		HouseNumber: " C-14 ",
		OwnerName:   " Thomas ",
		Division:    domain.DivisionC,
		Phone:       &phone,
	}

	suite.mockRepo.On("SaveHouse", ctx, mock.MatchedBy(func(h domain.House) bool {
		return h.HouseNumber == "C-14" &&
			h.OwnerName == "Thomas" &&
			h.Division == domain.DivisionC &&
			h.Phone != nil && *h.Phone == phone &&
			h.CreatedBy == "admin"
	})).Return(nil).Once()

	house, err := suite.service.CreateHouse(ctx, req, "admin")

	suite.Require().NoError(err)
	suite.Equal("C-14", house.HouseNumber)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *HouseServiceTestSuite) TestCreateHouse_BlankPhoneStoredAsNil() {
	ctx := context.Background()
	phone := "  "
	req := dto.CreateHouseRequest{
		HouseNumber: "C-15",
		OwnerName:   "Annie",
		Division:    domain.DivisionC,
		Phone:       &phone,
	}

	suite.mockRepo.On("SaveHouse", ctx, mock.MatchedBy(func(h domain.House) bool {
		return h.Phone == nil
	})).Return(nil).Once()

	_, err := suite.service.CreateHouse(ctx, req, "admin")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *HouseServiceTestSuite) TestCreateHouse_UnknownDivision() {
	ctx := context.Background()
	req := dto.CreateHouseRequest{
		HouseNumber: "F-1",
		OwnerName:   "Nobody",
		Division:    domain.Division("F"),
	}

	house, err := suite.service.CreateHouse(ctx, req, "admin")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(house)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveHouse", mock.Anything, mock.Anything)
}

func (suite *HouseServiceTestSuite) TestListHouses_DivisionFilter() {
	ctx := context.Background()
	houses := []domain.House{
		{HouseNumber: "B-1", OwnerName: "Meera", Division: domain.DivisionB},
	}

	suite.mockRepo.On("ListHouses", ctx, mock.MatchedBy(func(f portsrepo.HouseListFilter) bool {
		return f.Division != nil && *f.Division == domain.DivisionB && f.OwnerName == ""
	})).Return(houses, nil).Once()

	result, err := suite.service.ListHouses(ctx, dto.ListHousesParams{Division: "B"})

	suite.Require().NoError(err)
	suite.Len(result, 1)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *HouseServiceTestSuite) TestListHouses_UnknownDivision() {
	ctx := context.Background()

	_, err := suite.service.ListHouses(ctx, dto.ListHousesParams{Division: "Q"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListHouses", mock.Anything, mock.Anything)
}

func (suite *HouseServiceTestSuite) TestUpdateHouse_PartialUpdate() {
	ctx := context.Background()
	phone := "9447000000"
	existing := &domain.House{
		HouseNumber: "C-14",
		OwnerName:   "Thomas",
		Division:    domain.DivisionC,
		Phone:       &phone,
	}
	newOwner := "Thomas Jr"
	req := dto.UpdateHouseRequest{OwnerName: &newOwner}

	suite.mockRepo.On("FindHouseByNumber", ctx, "C-14").Return(existing, nil).Once()
	suite.mockRepo.On("UpdateHouse", ctx, mock.MatchedBy(func(h domain.House) bool {
		return h.OwnerName == "Thomas Jr" &&
			h.Division == domain.DivisionC &&
			h.Phone != nil && *h.Phone == phone &&
			h.LastUpdatedBy == "admin"
	})).Return(nil).Once()

	house, err := suite.service.UpdateHouse(ctx, "C-14", req, "admin")

	suite.Require().NoError(err)
	suite.Equal("Thomas Jr", house.OwnerName)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *HouseServiceTestSuite) TestUpdateHouse_NotFound() {
	ctx := context.Background()
	newOwner := "Nobody"
	req := dto.UpdateHouseRequest{OwnerName: &newOwner}

	suite.mockRepo.On("FindHouseByNumber", ctx, "Z-99").Return(nil, apperrors.ErrNotFound).Once()

	house, err := suite.service.UpdateHouse(ctx, "Z-99", req, "admin")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(house)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateHouse", mock.Anything, mock.Anything)
}

func TestHouseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(HouseServiceTestSuite))
}
