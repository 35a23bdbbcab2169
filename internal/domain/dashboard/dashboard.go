// Package dashboard folds the business collections into read-only KPIs.
package dashboard

import (
	"sort"
	"time"

	"bahia_gestao/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const (
	trailingMonths = 6
	topItems       = 5
)

var shortMonthNames = [...]string{"Jan", "Fev", "Mar", "Abr", "Mai", "Jun", "Jul", "Ago", "Set", "Out", "Nov", "Dez"}

// Projection factors applied to realized revenue for the next two months.
var (
	projectedRevenue = [...]float64{0.15, 0.18}
	projectedProfit  = [...]float64{0.05, 0.06}
)

type Thresholds struct {
	ProductMargin float64
	ServiceMargin float64
}

func DefaultThresholds() Thresholds {
	return Thresholds{ProductMargin: 0.2, ServiceMargin: 0.3}
}

type Input struct {
	Products     []entities.Product
	Services     []entities.Service
	Orders       []entities.Order
	Appointments []entities.Appointment
	Expenses     []entities.Expense
	Now          time.Time
	Thresholds   Thresholds
}

type MonthPoint struct {
	Key      string  `json:"key"`
	Label    string  `json:"label"`
	Revenue  float64 `json:"revenue"`
	Expenses float64 `json:"expenses"`
	Profit   float64 `json:"profit"`
	Real     bool    `json:"real"`
}

type AppointmentMonth struct {
	Label     string `json:"label"`
	Completed int    `json:"completed"`
	Canceled  int    `json:"canceled"`
	Pending   int    `json:"pending"`
}

type CategoryValue struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type AppointmentKPIs struct {
	ThisMonth          int `json:"this_month"`
	Pending            int `json:"pending"`
	Canceled           int `json:"canceled"`
	CompletedThisMonth int `json:"completed_this_month"`
}

type Summary struct {
	StockValue           float64            `json:"stock_value"`
	PotentialSales       float64            `json:"potential_sales"`
	PotentialProfit      float64            `json:"potential_profit"`
	AvgProductMargin     float64            `json:"avg_product_margin"`
	AvgServiceMargin     float64            `json:"avg_service_margin"`
	LowStock             []entities.Product `json:"low_stock"`
	LowMarginProducts    []entities.Product `json:"low_margin_products"`
	LowMarginServices    []entities.Service `json:"low_margin_services"`
	RealizedRevenue      float64            `json:"realized_revenue"`
	OrderCount           int                `json:"order_count"`
	ExpensesThisMonth    float64            `json:"expenses_this_month"`
	ExpensesAllTime      float64            `json:"expenses_all_time"`
	NetProfit            float64            `json:"net_profit"`
	Appointments         AppointmentKPIs    `json:"appointments"`
	Monthly              []MonthPoint       `json:"monthly"`
	AppointmentEvolution []AppointmentMonth `json:"appointment_evolution"`
	ProductsByCategory   []CategoryValue    `json:"products_by_category"`
	ServicesByCategory   []CategoryValue    `json:"services_by_category"`
	ExpensesByCategory   []CategoryValue    `json:"expenses_by_category"`
	TopProducts          []CategoryValue    `json:"top_products"`
	TopServices          []CategoryValue    `json:"top_services"`
}

// Build computes the dashboard. It has no side effects.
func Build(in Input) Summary {
	th := in.Thresholds
	if th == (Thresholds{}) {
		th = DefaultThresholds()
	}
	s := Summary{
		LowStock:          []entities.Product{},
		LowMarginProducts: []entities.Product{},
		LowMarginServices: []entities.Service{},
	}

	stockValue, potential, marginSum := decimal.Zero, decimal.Zero, decimal.Zero
	for _, p := range in.Products {
		stock := decimal.NewFromInt(int64(p.Stock))
		stockValue = stockValue.Add(decimal.NewFromFloat(p.Cost).Mul(stock))
		potential = potential.Add(decimal.NewFromFloat(p.Price).Mul(stock))
		marginSum = marginSum.Add(decimal.NewFromFloat(p.Margin()))
		if p.IsLowStock() {
			s.LowStock = append(s.LowStock, p)
		}
		if p.Margin() < th.ProductMargin {
			s.LowMarginProducts = append(s.LowMarginProducts, p)
		}
	}
	s.StockValue = stockValue.InexactFloat64()
	s.PotentialSales = potential.InexactFloat64()
	s.PotentialProfit = potential.Sub(stockValue).InexactFloat64()
	s.AvgProductMargin = averagePercent(marginSum, len(in.Products))

	var active []entities.Service
	serviceMargins := decimal.Zero
	for _, svc := range in.Services {
		if !svc.Active {
			continue
		}
		active = append(active, svc)
		serviceMargins = serviceMargins.Add(decimal.NewFromFloat(svc.Margin()))
		if svc.Margin() < th.ServiceMargin {
			s.LowMarginServices = append(s.LowMarginServices, svc)
		}
	}
	s.AvgServiceMargin = averagePercent(serviceMargins, len(active))

	revenue := decimal.Zero
	for _, o := range in.Orders {
		revenue = revenue.Add(decimal.NewFromFloat(o.TotalValue))
	}
	s.RealizedRevenue = revenue.InexactFloat64()
	s.OrderCount = len(in.Orders)

	now := in.Now
	thisMonth := monthKey(now)
	expensesAll, expensesMonth := decimal.Zero, decimal.Zero
	for _, e := range in.Expenses {
		amount := decimal.NewFromFloat(e.Amount)
		expensesAll = expensesAll.Add(amount)
		if keyOf(e.Date) == thisMonth {
			expensesMonth = expensesMonth.Add(amount)
		}
	}
	s.ExpensesAllTime = expensesAll.InexactFloat64()
	s.ExpensesThisMonth = expensesMonth.InexactFloat64()
	s.NetProfit = revenue.Sub(expensesAll).InexactFloat64()

	for _, a := range in.Appointments {
		inMonth := keyOf(a.Date) == thisMonth
		if inMonth {
			s.Appointments.ThisMonth++
		}
		switch a.Status {
		case entities.AppointmentStatusPending:
			s.Appointments.Pending++
		case entities.AppointmentStatusCanceled:
			s.Appointments.Canceled++
		case entities.AppointmentStatusCompleted:
			if inMonth {
				s.Appointments.CompletedThisMonth++
			}
		}
	}

	s.Monthly = monthlySeries(in, revenue)
	s.AppointmentEvolution = appointmentEvolution(in.Appointments, now)
	s.ProductsByCategory, s.TopProducts = productBreakdown(in.Products)
	s.ServicesByCategory, s.TopServices = serviceBreakdown(active)
	s.ExpensesByCategory = expenseBreakdown(in.Expenses)
	return s
}

func averagePercent(sum decimal.Decimal, n int) float64 {
	if n == 0 {
		return 0
	}
	return sum.Div(decimal.NewFromInt(int64(n))).Mul(decimal.NewFromInt(100)).InexactFloat64()
}

func monthKey(t time.Time) string {
	return t.Format("2006-01")
}

// keyOf takes the YYYY-MM prefix of a stored date.
func keyOf(date string) string {
	if len(date) < 7 {
		return ""
	}
	return date[:7]
}

func monthStart(now time.Time, offset int) time.Time {
	return time.Date(now.Year(), now.Month()+time.Month(offset), 1, 0, 0, 0, 0, now.Location())
}

func label(t time.Time) string {
	return shortMonthNames[t.Month()-1]
}

// monthlySeries has six realized months ending at now followed by two
// projected months derived from total realized revenue.
func monthlySeries(in Input, realized decimal.Decimal) []MonthPoint {
	type acc struct{ revenue, expenses decimal.Decimal }
	buckets := make(map[string]*acc, trailingMonths)
	points := make([]MonthPoint, 0, trailingMonths+len(projectedRevenue))
	for i := trailingMonths - 1; i >= 0; i-- {
		m := monthStart(in.Now, -i)
		buckets[monthKey(m)] = &acc{decimal.Zero, decimal.Zero}
		points = append(points, MonthPoint{Key: monthKey(m), Label: label(m), Real: true})
	}

	for _, o := range in.Orders {
		if b, ok := buckets[keyOf(o.Date)]; ok {
			b.revenue = b.revenue.Add(decimal.NewFromFloat(o.TotalValue))
		}
	}
	for _, e := range in.Expenses {
		if b, ok := buckets[keyOf(e.Date)]; ok {
			b.expenses = b.expenses.Add(decimal.NewFromFloat(e.Amount))
		}
	}
	for i := range points {
		b := buckets[points[i].Key]
		points[i].Revenue = b.revenue.InexactFloat64()
		points[i].Expenses = b.expenses.InexactFloat64()
		points[i].Profit = b.revenue.Sub(b.expenses).InexactFloat64()
	}

	for i := range projectedRevenue {
		m := monthStart(in.Now, i+1)
		points = append(points, MonthPoint{
			Key:     monthKey(m),
			Label:   label(m),
			Revenue: realized.Mul(decimal.NewFromFloat(projectedRevenue[i])).InexactFloat64(),
			Profit:  realized.Mul(decimal.NewFromFloat(projectedProfit[i])).InexactFloat64(),
		})
	}
	return points
}

func appointmentEvolution(apps []entities.Appointment, now time.Time) []AppointmentMonth {
	out := make([]AppointmentMonth, 0, trailingMonths)
	index := make(map[string]int, trailingMonths)
	for i := trailingMonths - 1; i >= 0; i-- {
		m := monthStart(now, -i)
		index[monthKey(m)] = len(out)
		out = append(out, AppointmentMonth{Label: label(m)})
	}
	for _, a := range apps {
		i, ok := index[keyOf(a.Date)]
		if !ok {
			continue
		}
		switch a.Status {
		case entities.AppointmentStatusCompleted:
			out[i].Completed++
		case entities.AppointmentStatusCanceled:
			out[i].Canceled++
		case entities.AppointmentStatusPending:
			out[i].Pending++
		}
	}
	return out
}

// groupSum keeps categories in first-seen order.
type groupSum struct {
	order  []string
	values map[string]decimal.Decimal
}

func newGroupSum() *groupSum {
	return &groupSum{values: map[string]decimal.Decimal{}}
}

func (g *groupSum) add(name string, v decimal.Decimal) {
	cur, ok := g.values[name]
	if !ok {
		g.order = append(g.order, name)
		cur = decimal.Zero
	}
	g.values[name] = cur.Add(v)
}

func (g *groupSum) list() []CategoryValue {
	out := make([]CategoryValue, 0, len(g.order))
	for _, name := range g.order {
		out = append(out, CategoryValue{Name: name, Value: g.values[name].InexactFloat64()})
	}
	return out
}

func top(values []CategoryValue) []CategoryValue {
	sort.SliceStable(values, func(i, j int) bool { return values[i].Value > values[j].Value })
	if len(values) > topItems {
		values = values[:topItems]
	}
	return values
}

func productBreakdown(products []entities.Product) ([]CategoryValue, []CategoryValue) {
	byCategory := newGroupSum()
	items := make([]CategoryValue, 0, len(products))
	for _, p := range products {
		v := decimal.NewFromFloat(p.Price).Mul(decimal.NewFromInt(int64(p.Stock)))
		byCategory.add(p.Category, v)
		items = append(items, CategoryValue{Name: p.Name, Value: v.InexactFloat64()})
	}
	return byCategory.list(), top(items)
}

func serviceBreakdown(active []entities.Service) ([]CategoryValue, []CategoryValue) {
	byCategory := newGroupSum()
	items := make([]CategoryValue, 0, len(active))
	for _, svc := range active {
		byCategory.add(svc.Category, decimal.NewFromInt(1))
		items = append(items, CategoryValue{Name: svc.Name, Value: svc.Price})
	}
	return byCategory.list(), top(items)
}

func expenseBreakdown(expenses []entities.Expense) []CategoryValue {
	byCategory := newGroupSum()
	for _, e := range expenses {
		byCategory.add(e.Category, decimal.NewFromFloat(e.Amount))
	}
	return byCategory.list()
}
