package catalog

import "pricecompare/internal/product"

// SeedProducts returns the default catalog served when no other source is
// configured.
func SeedProducts() []product.Product {
	return []product.Product{
		{
			ID:       1,
			Name:     "iPhone 15 Pro",
			Amazon:   product.Offer{Price: 99999, Rating: 4.7, URL: "https://www.amazon.in/s?k=iPhone+15+Pro"},
			Flipkart: product.Offer{Price: 98999, Rating: 4.8, URL: "https://www.flipkart.com/search?q=iPhone+15+Pro"},
			Myntra:   product.Offer{Price: 89999, Rating: 4.6, URL: "https://www.myntra.com/search?q=iPhone+15+Pro"},
		},
		{
			ID:       2,
			Name:     "Samsung Galaxy S24",
			Amazon:   product.Offer{Price: 69999, Rating: 4.2, URL: "https://www.amazon.in/s?k=Samsung+Galaxy+S24"},
			Flipkart: product.Offer{Price: 87999, Rating: 4.4, URL: "https://www.flipkart.com/search?q=Samsung+Galaxy+S24"},
			Myntra:   product.Offer{Price: 92999, Rating: 4.1, URL: "https://www.myntra.com/search?q=Samsung+Galaxy+S24"},
		},
		{
			ID:       3,
			Name:     "MacBook Air M2",
			Amazon:   product.Offer{Price: 89990, Rating: 4.9, URL: "https://www.amazon.in/s?k=MacBook+Air+M2"},
			Flipkart: product.Offer{Price: 87990, Rating: 4.8, URL: "https://www.flipkart.com/search?q=MacBook+Air+M2"},
			Myntra:   product.Offer{Price: 92990, Rating: 4.9, URL: "https://www.myntra.com/search?q=MacBook+Air+M2"},
		},
		{
			ID:       4,
			Name:     "Sony WH-1000XM5 Headphones",
			Amazon:   product.Offer{Price: 25000, Rating: 4.8, URL: "https://www.amazon.in/s?k=Sony+WH-1000XM5"},
			Flipkart: product.Offer{Price: 22000, Rating: 4.2, URL: "https://www.flipkart.com/search?q=Sony+WH-1000XM5"},
			Myntra:   product.Offer{Price: 20000, Rating: 3.6, URL: "https://www.myntra.com/search?q=Sony+WH-1000XM5"},
		},
		{
			ID:       5,
			Name:     "Nike Air Max 270",
			Amazon:   product.Offer{Price: 8999, Rating: 3.8, URL: "https://www.amazon.in/s?k=Nike+Air+Max+270"},
			Flipkart: product.Offer{Price: 8499, Rating: 3.5, URL: "https://www.flipkart.com/search?q=Nike+Air+Max+270"},
			Myntra:   product.Offer{Price: 9499, Rating: 3.9, URL: "https://www.myntra.com/search?q=Nike+Air+Max+270"},
		},
		{
			ID:       6,
			Name:     "Samsung 55-inch QLED TV",
			Amazon:   product.Offer{Price: 64990, Rating: 4.5, URL: "https://www.amazon.in/s?k=Samsung+55+inch+QLED+TV"},
			Flipkart: product.Offer{Price: 62990, Rating: 3.8, URL: "https://www.flipkart.com/search?q=Samsung+55+inch+QLED+TV"},
			Myntra:   product.Offer{Price: 66990, Rating: 4.1, URL: "https://www.myntra.com/search?q=Samsung+55+inch+QLED+TV"},
		},
		{
			ID:       7,
			Name:     "Apple Watch Series 9",
			Amazon:   product.Offer{Price: 39990, Rating: 4.6, URL: "https://www.amazon.in/s?k=Apple+Watch+Series+9"},
			Flipkart: product.Offer{Price: 38990, Rating: 4.5, URL: "https://www.flipkart.com/search?q=Apple+Watch+Series+9"},
			Myntra:   product.Offer{Price: 41990, Rating: 4.7, URL: "https://www.myntra.com/search?q=Apple+Watch+Series+9"},
		},
		{
			ID:       8,
			Name:     "Canon EOS R6 Camera",
			Amazon:   product.Offer{Price: 149990, Rating: 4.6, URL: "https://www.amazon.in/s?k=Canon+EOS+R6"},
			Flipkart: product.Offer{Price: 147990, Rating: 2.9, URL: "https://www.flipkart.com/search?q=Canon+EOS+R6"},
			Myntra:   product.Offer{Price: 151990, Rating: 4.7, URL: "https://www.myntra.com/search?q=Canon+EOS+R6"},
		},
		{
			ID:       9,
			Name:     "Adidas Ultraboost 22",
			Amazon:   product.Offer{Price: 12999, Rating: 2.5, URL: "https://www.amazon.in/s?k=Adidas+Ultraboost+22"},
			Flipkart: product.Offer{Price: 12499, Rating: 2.8, URL: "https://www.flipkart.com/search?q=Adidas+Ultraboost+22"},
			Myntra:   product.Offer{Price: 11499, Rating: 2.2, URL: "https://www.myntra.com/search?q=Adidas+Ultraboost+22"},
		},
		{
			ID:       10,
			Name:     "Dell XPS 13 Laptop",
			Amazon:   product.Offer{Price: 89990, Rating: 4.5, URL: "https://www.amazon.in/s?k=Dell+XPS+13"},
			Flipkart: product.Offer{Price: 87990, Rating: 4.1, URL: "https://www.flipkart.com/search?q=Dell+XPS+13"},
			Myntra:   product.Offer{Price: 91990, Rating: 4.3, URL: "https://www.myntra.com/search?q=Dell+XPS+13"},
		},
	}
}
