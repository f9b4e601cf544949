package product

// BestDeal returns the vendor with the lowest price. Ties go to the vendor
// that comes first in Vendors order; rating is not considered.
func BestDeal(p Product) Vendor {
	best := vendors[0]
	lowest := p.Offer(best).Price
	for _, v := range vendors[1:] {
		if price := p.Offer(v).Price; price < lowest {
			best, lowest = v, price
		}
	}
	return best
}
