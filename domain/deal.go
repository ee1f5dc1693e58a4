package domain

// DealType distinguishes a ready (secondary market) purchase from an
// off-plan purchase with an outstanding payment schedule.
type DealType string

const (
	DealSecondary DealType = "secondary"
	DealOffplan   DealType = "offplan"
)

// LossSharingMode controls how a negative project profit is split with the
// investor.
type LossSharingMode string

const (
	// LossProportional shares losses in the same proportion as gains.
	LossProportional LossSharingMode = "proportional"
	// LossFloorAtZero computes the investor share on max(profit, 0).
	LossFloorAtZero LossSharingMode = "floor-at-zero"
)

// ScheduledPayment is one outstanding installment of an off-plan deal.
// DueDate uses the YYYY-MM-DD format.
type ScheduledPayment struct {
	Amount  float64 `json:"amount" yaml:"amount"`
	DueDate string  `json:"due_date" yaml:"due_date"`
}

// OffplanTerms carries the fields that only apply to off-plan deals.
type OffplanTerms struct {
	PaidAmount      float64            `json:"paid_amount" yaml:"paid_amount"`
	PaymentSchedule []ScheduledPayment `json:"payment_schedule" yaml:"payment_schedule"`
}

// DealInput is the full parameter set of one flip deal. Percent fields are
// 0..100 on this surface and converted to 0..1 rates at computation time.
type DealInput struct {
	DealType DealType      `json:"deal_type" yaml:"deal_type"`
	Offplan  *OffplanTerms `json:"offplan,omitempty" yaml:"offplan,omitempty"`

	// Purchase. For off-plan deals PurchasePrice is the full developer
	// price; acquisition fees are computed against it, not the paid amount.
	PurchasePrice  float64 `json:"purchase_price" yaml:"purchase_price"`
	DldPct         float64 `json:"dld_pct" yaml:"dld_pct"`
	BuyerFeePct    float64 `json:"buyer_fee_pct" yaml:"buyer_fee_pct"`
	BuyerFeeVatPct float64 `json:"buyer_fee_vat_pct" yaml:"buyer_fee_vat_pct"`
	TrusteeFee     float64 `json:"trustee_fee" yaml:"trustee_fee"`

	// Renovation.
	RenovationBudget float64 `json:"renovation_budget" yaml:"renovation_budget"`
	ReservePct       float64 `json:"reserve_pct" yaml:"reserve_pct"`

	// Carrying costs over the holding period.
	ServiceChargeAnnual float64 `json:"service_charge_annual" yaml:"service_charge_annual"`
	DewaMonthly         float64 `json:"dewa_monthly" yaml:"dewa_monthly"`

	// Sale.
	SalePrice       float64 `json:"sale_price" yaml:"sale_price"`
	SellerFeePct    float64 `json:"seller_fee_pct" yaml:"seller_fee_pct"`
	SellerFeeVatPct float64 `json:"seller_fee_vat_pct" yaml:"seller_fee_vat_pct"`

	// Timing, whole months.
	MonthsRepair   int `json:"months_repair" yaml:"months_repair"`
	MonthsExposure int `json:"months_exposure" yaml:"months_exposure"`

	// Profit split. InvestorSharePct + OperatorSharePct must equal 100
	// within a 0.01 tolerance.
	InvestorSharePct float64         `json:"investor_share_pct" yaml:"investor_share_pct"`
	OperatorSharePct float64         `json:"operator_share_pct" yaml:"operator_share_pct"`
	LossSharing      LossSharingMode `json:"loss_sharing,omitempty" yaml:"loss_sharing,omitempty"`
}
