package display

import "fmt"

// OrderStatus enumerates every order state the back office renders.
type OrderStatus string

const (
	OrderPending        OrderStatus = "PENDING"
	OrderConfirmed      OrderStatus = "CONFIRMED"
	OrderShipped        OrderStatus = "SHIPPED"
	OrderOutForDelivery OrderStatus = "OUT_FOR_DELIVERY"
	OrderDelivered      OrderStatus = "DELIVERED"
	OrderCancelled      OrderStatus = "CANCELLED"
	OrderReturned       OrderStatus = "RETURNED"
)

// AllOrderStatuses lists every value of OrderStatus. Tests use it to keep
// OrderAttr total.
var AllOrderStatuses = []OrderStatus{
	OrderPending,
	OrderConfirmed,
	OrderShipped,
	OrderOutForDelivery,
	OrderDelivered,
	OrderCancelled,
	OrderReturned,
}

// VendorStatus enumerates vendor onboarding states.
type VendorStatus string

const (
	VendorPending  VendorStatus = "PENDING"
	VendorApproved VendorStatus = "APPROVED"
	VendorRejected VendorStatus = "REJECTED"
)

var AllVendorStatuses = []VendorStatus{VendorPending, VendorApproved, VendorRejected}

// Attr describes how one status value renders: a human label and a named
// color understood by the terminal theme.
type Attr struct {
	Label string
	Color string
}

// OrderAttr maps an order status to its display attributes. The mapping is
// total over AllOrderStatuses; an unknown value is an error rather than a
// silent default color.
func OrderAttr(s OrderStatus) (Attr, error) {
	switch s {
	case OrderPending:
		return Attr{Label: "Pending", Color: "yellow"}, nil
	case OrderConfirmed:
		return Attr{Label: "Confirmed", Color: "blue"}, nil
	case OrderShipped:
		return Attr{Label: "Shipped", Color: "cyan"}, nil
	case OrderOutForDelivery:
		return Attr{Label: "Out for delivery", Color: "magenta"}, nil
	case OrderDelivered:
		return Attr{Label: "Delivered", Color: "green"}, nil
	case OrderCancelled:
		return Attr{Label: "Cancelled", Color: "red"}, nil
	case OrderReturned:
		return Attr{Label: "Returned", Color: "gray"}, nil
	}
	return Attr{}, fmt.Errorf("unknown order status %q", string(s))
}

// VendorAttr maps a vendor onboarding status to its display attributes.
func VendorAttr(s VendorStatus) (Attr, error) {
	switch s {
	case VendorPending:
		return Attr{Label: "Pending", Color: "yellow"}, nil
	case VendorApproved:
		return Attr{Label: "Approved", Color: "green"}, nil
	case VendorRejected:
		return Attr{Label: "Rejected", Color: "red"}, nil
	}
	return Attr{}, fmt.Errorf("unknown vendor status %q", string(s))
}
