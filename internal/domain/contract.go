package domain

import (
	"github.com/shopspring/decimal"
)

// ContractType identifies which contract evaluator a payload is routed to.
type ContractType string

const (
	ContractWholesale           ContractType = "wholesale"
	ContractBuyback             ContractType = "buyback"
	ContractRevenueSharing      ContractType = "revenueSharing"
	ContractOption              ContractType = "optionContract"
	ContractQuantityFlexibility ContractType = "quantityFlexibility"
)

// AllContractTypes lists every supported contract type in display order.
var AllContractTypes = []ContractType{
	ContractWholesale,
	ContractBuyback,
	ContractRevenueSharing,
	ContractOption,
	ContractQuantityFlexibility,
}

// IsValid reports whether ct is one of the supported contract types.
func (ct ContractType) IsValid() bool {
	switch ct {
	case ContractWholesale, ContractBuyback, ContractRevenueSharing,
		ContractOption, ContractQuantityFlexibility:
		return true
	}
	return false
}

// DisplayName returns the human-readable contract name.
func (ct ContractType) DisplayName() string {
	switch ct {
	case ContractWholesale:
		return "Wholesale Price Contract"
	case ContractBuyback:
		return "Buyback Contract"
	case ContractRevenueSharing:
		return "Revenue Sharing Contract"
	case ContractOption:
		return "Option Contract"
	case ContractQuantityFlexibility:
		return "Quantity Flexibility Contract"
	}
	return string(ct)
}

// ContractDescriptions summarizes what each contract analysis covers.
var ContractDescriptions = map[ContractType]string{
	ContractWholesale: "Evaluate stocking and profitability under standard wholesale " +
		"procurement with optional inventory and shortage cost components.",
	ContractBuyback: "Analyze retailer and manufacturer incentives when unsold inventory " +
		"can be returned at a buyback price.",
	ContractRevenueSharing: "Assess profit allocation between channel partners when " +
		"downstream sales revenue is shared.",
	ContractOption: "Compare hedging with capacity options versus pure spot-market " +
		"purchasing under uncertain demand.",
	ContractQuantityFlexibility: "Optimize final order adjustments around an initial " +
		"commitment within a predefined flexibility band.",
}

// OptionEvaluationMode selects how an option contract payload is evaluated.
// Only meaningful when the contract type is ContractOption.
type OptionEvaluationMode string

const (
	OptionModeStandard     OptionEvaluationMode = "standard"
	OptionModeOptimization OptionEvaluationMode = "optimization"
)

// IsValid reports whether m is a recognized option evaluation mode.
func (m OptionEvaluationMode) IsValid() bool {
	return m == OptionModeStandard || m == OptionModeOptimization
}

// Input field keys shared across contract tables.
const (
	FieldRetailPrice       = "retailPrice"
	FieldWholesalePrice    = "wholesalePrice"
	FieldOrderQuantity     = "orderQuantity"
	FieldBuybackPrice      = "buybackPrice"
	FieldRevenueShareRatio = "revenueShareRatio"
	FieldOptionQuantity    = "optionQuantity"
	FieldStrikePrice       = "strikePrice"
	FieldReservationPrice  = "reservationPrice"
	FieldSpotPrice         = "spotPrice"
	FieldLongTermPrice     = "longTermPrice"
	FieldDemandMean        = "demandMean"
	FieldDemandStdDev      = "demandStdDev"
	FieldInitialCommitment = "initialCommitment"
	FieldAdjustmentRange   = "adjustmentRange"
)

// FieldSpec describes a single numeric input field for a contract type:
// how it is labeled, its default, and the bounds the validator enforces.
// Fields are non-negative unless StrictlyPositive tightens the lower bound;
// MaxValue, when set, is an inclusive upper bound.
type FieldSpec struct {
	Key              string          `yaml:"key" json:"key"`
	Label            string          `yaml:"label" json:"label"`
	Default          decimal.Decimal `yaml:"default" json:"default"`
	StrictlyPositive bool            `yaml:"strictly_positive" json:"strictlyPositive"`
	MaxValue         *decimal.Decimal `yaml:"max_value,omitempty" json:"maxValue,omitempty"`
}

func spec(key, label string, def float64) FieldSpec {
	return FieldSpec{Key: key, Label: label, Default: decimal.NewFromFloat(def)}
}

func boundedSpec(key, label string, def, max float64) FieldSpec {
	m := decimal.NewFromFloat(max)
	return FieldSpec{Key: key, Label: label, Default: decimal.NewFromFloat(def), MaxValue: &m}
}

func positiveSpec(key, label string, def float64) FieldSpec {
	return FieldSpec{Key: key, Label: label, Default: decimal.NewFromFloat(def), StrictlyPositive: true}
}

var (
	wholesaleFields = []FieldSpec{
		positiveSpec(FieldRetailPrice, "Retail Price", 150),
		spec(FieldWholesalePrice, "Wholesale Price", 90),
		spec(FieldOrderQuantity, "Order Quantity", 100),
	}

	buybackFields = []FieldSpec{
		positiveSpec(FieldRetailPrice, "Retail Price", 150),
		spec(FieldWholesalePrice, "Wholesale Price", 95),
		spec(FieldBuybackPrice, "Buyback Price", 40),
		spec(FieldOrderQuantity, "Order Quantity", 100),
	}

	revenueSharingFields = []FieldSpec{
		positiveSpec(FieldRetailPrice, "Retail Price", 160),
		spec(FieldWholesalePrice, "Wholesale Price", 80),
		boundedSpec(FieldRevenueShareRatio, "Revenue Share Ratio", 0.30, 1),
		spec(FieldOrderQuantity, "Order Quantity", 100),
	}

	optionStandardFields = []FieldSpec{
		spec(FieldOptionQuantity, "Option Quantity", 100),
		spec(FieldStrikePrice, "Strike Price", 95),
		spec(FieldReservationPrice, "Reservation Price (Premium)", 12),
		spec(FieldSpotPrice, "Spot Price", 110),
	}

	optionOptimizationFields = []FieldSpec{
		spec(FieldDemandMean, "Demand Mean", 100),
		positiveSpec(FieldDemandStdDev, "Demand Standard Deviation", 20),
		spec(FieldStrikePrice, "Exercise Price", 95),
		spec(FieldReservationPrice, "Reservation Price (Premium)", 12),
		spec(FieldSpotPrice, "Expected Spot Price", 110),
		spec(FieldLongTermPrice, "Long-term Contract Price", 100),
	}

	quantityFlexibilityFields = []FieldSpec{
		spec(FieldInitialCommitment, "Initial Order Commitment", 100),
		boundedSpec(FieldAdjustmentRange, "Adjustment Range (%)", 20, 100),
		spec(FieldWholesalePrice, "Wholesale Price", 92),
	}
)

// RequiredFields returns the field descriptors the validator must parse for
// the given contract type and, for option contracts, evaluation mode.
func RequiredFields(ct ContractType, mode OptionEvaluationMode) []FieldSpec {
	switch ct {
	case ContractWholesale:
		return wholesaleFields
	case ContractBuyback:
		return buybackFields
	case ContractRevenueSharing:
		return revenueSharingFields
	case ContractOption:
		if mode == OptionModeOptimization {
			return optionOptimizationFields
		}
		return optionStandardFields
	case ContractQuantityFlexibility:
		return quantityFlexibilityFields
	}
	return nil
}
