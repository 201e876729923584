package market

import "github.com/papertrade/dashboard-backend/internal/model"

// Seed catalogs for the simulated market. Prices are starting points for the
// random walk, in the wallet currency.

func seedStocks() []model.Stock {
	return []model.Stock{
		{Symbol: "RELIANCE", Name: "Reliance Industries Ltd.", Price: 2850.50, MarketCap: "19.3T", Volume: "7.2M"},
		{Symbol: "TCS", Name: "Tata Consultancy Services", Price: 3800.75, MarketCap: "13.9T", Volume: "2.1M"},
		{Symbol: "HDFCBANK", Name: "HDFC Bank Ltd.", Price: 1550.20, MarketCap: "11.8T", Volume: "12.4M"},
		{Symbol: "INFY", Name: "Infosys Ltd.", Price: 1605.90, MarketCap: "6.7T", Volume: "5.8M"},
		{Symbol: "ICICIBANK", Name: "ICICI Bank Ltd.", Price: 1100.45, MarketCap: "7.7T", Volume: "10.1M"},
		{Symbol: "BHARTIARTL", Name: "Bharti Airtel Ltd.", Price: 1385.00, MarketCap: "7.8T", Volume: "4.6M"},
		{Symbol: "HINDUNILVR", Name: "Hindustan Unilever Ltd.", Price: 2540.80, MarketCap: "6.0T", Volume: "1.4M"},
		{Symbol: "ITC", Name: "ITC Ltd.", Price: 430.10, MarketCap: "5.4T", Volume: "9.8M"},
		{Symbol: "SBIN", Name: "State Bank of India", Price: 830.25, MarketCap: "7.4T", Volume: "14.7M"},
		{Symbol: "BAJFINANCE", Name: "Bajaj Finance Ltd.", Price: 7250.60, MarketCap: "4.5T", Volume: "0.9M"},
		{Symbol: "WIPRO", Name: "Wipro Ltd.", Price: 480.75, MarketCap: "2.5T", Volume: "6.3M"},
		{Symbol: "ASIANPAINT", Name: "Asian Paints Ltd.", Price: 2880.40, MarketCap: "2.8T", Volume: "1.1M"},
	}
}

func seedCryptos() []model.Cryptocurrency {
	return []model.Cryptocurrency{
		{Symbol: "BTC", Name: "Bitcoin", Price: 5800000, MarketCap: 114e12, Volume: 2.1e12},
		{Symbol: "ETH", Name: "Ethereum", Price: 315000, MarketCap: 37e12, Volume: 1.2e12},
		{Symbol: "SOL", Name: "Solana", Price: 14000, MarketCap: 6.5e12, Volume: 0.4e12},
		{Symbol: "DOGE", Name: "Dogecoin", Price: 13.50, MarketCap: 1.9e12, Volume: 0.1e12},
		{Symbol: "SHIB", Name: "Shiba Inu", Price: 0.0021, MarketCap: 1.2e12, Volume: 0.05e12},
		{Symbol: "XRP", Name: "XRP", Price: 45.20, MarketCap: 2.5e12, Volume: 0.2e12},
		{Symbol: "ADA", Name: "Cardano", Price: 38.50, MarketCap: 1.3e12, Volume: 0.08e12},
		{Symbol: "MATIC", Name: "Polygon", Price: 60.10, MarketCap: 0.6e12, Volume: 0.06e12},
	}
}

func seedFunds() []model.MutualFund {
	return []model.MutualFund{
		{ID: "mf-1", Name: "Quant Small Cap Fund", Category: "Equity", Description: "An equity scheme predominantly investing in small-cap stocks for high growth potential.", Risk: "High", Return1Y: 67.9, Return3Y: 34.2, Nav: 264.49},
		{ID: "mf-2", Name: "Parag Parikh Flexi Cap Fund", Category: "Equity", Description: "A diversified equity fund investing across large-cap, mid-cap, and small-cap stocks.", Risk: "Medium", Return1Y: 38.4, Return3Y: 21.5, Nav: 79.99},
		{ID: "mf-3", Name: "ICICI Prudential Bluechip Fund", Category: "Equity", Description: "Invests in large-cap stocks with a track record of stable performance.", Risk: "Medium", Return1Y: 28.5, Return3Y: 18.9, Nav: 101.44},
		{ID: "mf-4", Name: "HDFC Short Term Debt Fund", Category: "Debt", Description: "Aims to provide regular income through investment in debt and money market instruments.", Risk: "Low", Return1Y: 7.2, Return3Y: 5.8, Nav: 29.98},
		{ID: "mf-5", Name: "SBI Equity Hybrid Fund", Category: "Hybrid", Description: "A balanced fund that invests in a mix of equity and debt to balance risk and returns.", Risk: "Medium", Return1Y: 25.1, Return3Y: 15.4, Nav: 245.67},
	}
}

// seedGoldPricePerGram is derived from the reference price per ten grams.
const seedGoldPricePerGram = 73800.0 / 10
