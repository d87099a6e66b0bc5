package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"komek/internal/application"
	"komek/internal/domain"
)

const testGMI = 1500.0

func appWith(incomes []domain.Income, family []domain.FamilyMember) *application.Application {
	return &application.Application{
		Incomes: incomes,
		Family:  family,
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		code     string
		category Category
	}{
		{"salary", CategoryLabor},
		{"pension", CategoryLabor},
		{"scholarship", CategoryEducation},
		{"business", CategoryEntrepreneurship},
		{"farming", CategoryAgriculture},
		{"land_lease", CategoryLandUse},
		{"cattle_sale", CategoryLivestock},
		{"deposit_interest", CategoryBanking},
		{"dividends", CategoryBanking},
		{"lottery_win", CategoryOther},
		{"", CategoryOther},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.category, Classify(tt.code))
		})
	}
}

func TestAnalyzeEmptyIncome(t *testing.T) {
	result := Analyze(appWith(nil, nil), testGMI)

	assert.Zero(t, result.TotalIncome)
	assert.Zero(t, result.PerCapitaIncome)
	assert.Empty(t, result.Categories)
	assert.Empty(t, result.PrimarySource)
	assert.Equal(t, StabilityLow, result.Stability)
	assert.Equal(t, DiversificationLow, result.Diversification)
	assert.Empty(t, result.Recommendations)
}

func TestAnalyzeCategoriesAndShares(t *testing.T) {
	app := appWith([]domain.Income{
		{TypeCode: "salary", Amount: 6000, Periodicity: domain.PeriodMonthly},
		{TypeCode: "business", Amount: 3000, Periodicity: domain.PeriodMonthly},
		{TypeCode: "harvest", Amount: 12000, Periodicity: domain.PeriodYearly}, // 1000/month
	}, nil)

	result := Analyze(app, testGMI)

	assert.InDelta(t, 10000, result.TotalIncome, 1e-9)
	assert.Len(t, result.Categories, 3)

	// Shares come back sorted by amount, largest first.
	assert.Equal(t, CategoryLabor, result.Categories[0].Category)
	assert.InDelta(t, 60, result.Categories[0].Percent, 1e-9)
	assert.Equal(t, CategoryEntrepreneurship, result.Categories[1].Category)
	assert.Equal(t, CategoryAgriculture, result.Categories[2].Category)

	assert.Equal(t, CategoryLabor, result.PrimarySource)
	assert.Equal(t, StabilityHigh, result.Stability)
}

func TestAnalyzeFlattensHouseholdSources(t *testing.T) {
	app := &application.Application{
		Family: []domain.FamilyMember{
			{FullName: "spouse", MonthlyIncome: 2000},
			{FullName: "child", MonthlyIncome: 0}, // no contribution
		},
		Land:      []domain.LandPlot{{TypeCode: "irrigated", AnnualIncome: 12000}},  // 1000/month
		Livestock: []domain.Livestock{{Type: domain.LivestockCow, Count: 1, AnnualIncome: 2400}}, // 200/month
		Vehicles:  []domain.Vehicle{{TypeCode: "truck", AnnualIncome: 3600}},        // 300/month
	}

	result := Analyze(app, testGMI)

	assert.InDelta(t, 3500, result.TotalIncome, 1e-9)

	byCategory := map[Category]float64{}
	for _, share := range result.Categories {
		byCategory[share.Category] = share.Amount
	}
	assert.InDelta(t, 2000, byCategory[CategoryLabor], 1e-9)     // family_labor
	assert.InDelta(t, 1000, byCategory[CategoryLandUse], 1e-9)   // land_yield
	assert.InDelta(t, 200, byCategory[CategoryLivestock], 1e-9)  // livestock_yield
	assert.InDelta(t, 300, byCategory[CategoryEntrepreneurship], 1e-9) // vehicle_commercial
}

func TestStability(t *testing.T) {
	assert.Equal(t, StabilityHigh, stability(CategoryLabor))
	assert.Equal(t, StabilityMedium, stability(CategoryEntrepreneurship))
	assert.Equal(t, StabilityMedium, stability(CategoryAgriculture))
	assert.Equal(t, StabilityLow, stability(CategoryBanking))
	assert.Equal(t, StabilityLow, stability(CategoryOther))
}

func TestDiversification(t *testing.T) {
	assert.Equal(t, DiversificationLow, diversification(0))
	assert.Equal(t, DiversificationLow, diversification(1))
	assert.Equal(t, DiversificationMedium, diversification(2))
	assert.Equal(t, DiversificationMedium, diversification(3))
	assert.Equal(t, DiversificationHigh, diversification(4))
	assert.Equal(t, DiversificationHigh, diversification(7))
}

func TestRecommendations(t *testing.T) {
	t.Run("concentrated low income household", func(t *testing.T) {
		app := appWith([]domain.Income{
			{TypeCode: "salary", Amount: 1000, Periodicity: domain.PeriodMonthly},
		}, []domain.FamilyMember{{FullName: "spouse"}, {FullName: "child"}})

		result := Analyze(app, testGMI)

		// 100% concentration, below GMI, all of it labor.
		assert.Equal(t, []string{RecDiversifyIncome, RecIncomeBelowGMI, RecReduceLaborShare}, result.Recommendations)
	})

	t.Run("income above GMI", func(t *testing.T) {
		app := appWith([]domain.Income{
			{TypeCode: "business", Amount: 2000, Periodicity: domain.PeriodMonthly},
			{TypeCode: "deposit_interest", Amount: 1500, Periodicity: domain.PeriodMonthly},
		}, nil)

		result := Analyze(app, testGMI)
		assert.Contains(t, result.Recommendations, RecIncomeAboveGMI)
		assert.NotContains(t, result.Recommendations, RecIncomeBelowGMI)
		assert.NotContains(t, result.Recommendations, RecReduceLaborShare)
	})

	t.Run("balanced portfolio gets no concentration warning", func(t *testing.T) {
		app := appWith([]domain.Income{
			{TypeCode: "salary", Amount: 500, Periodicity: domain.PeriodMonthly},
			{TypeCode: "business", Amount: 400, Periodicity: domain.PeriodMonthly},
			{TypeCode: "farming", Amount: 300, Periodicity: domain.PeriodMonthly},
			{TypeCode: "land_lease", Amount: 200, Periodicity: domain.PeriodMonthly},
		}, []domain.FamilyMember{{FullName: "spouse"}})

		result := Analyze(app, testGMI)
		assert.Equal(t, DiversificationHigh, result.Diversification)
		assert.NotContains(t, result.Recommendations, RecDiversifyIncome)
	})
}

func TestAnalyzeUsesMonthlyEquivalents(t *testing.T) {
	yearly := appWith([]domain.Income{
		{TypeCode: "salary", Amount: 12000, Periodicity: domain.PeriodYearly, From: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
	}, nil)
	monthly := appWith([]domain.Income{
		{TypeCode: "salary", Amount: 1000, Periodicity: domain.PeriodMonthly},
	}, nil)

	assert.InDelta(t, Analyze(monthly, testGMI).TotalIncome, Analyze(yearly, testGMI).TotalIncome, 1e-9)
}
