package screen

import "signalbot/internal/config"

// Screen identifiers
const (
	MainMenu     = "main_menu"
	LanguageMenu = "language_menu"
	Signals      = "signals"
	SignalsAck   = "signals_ack"
	Subscription = "subscription"
	Currency     = "currency"
	Proceed      = "proceed"
	PaymentFinal = "payment_final"
	Balance      = "balance"
	Referrals    = "referrals"
	ReferralLink = "referral_link"
	Withdraw     = "withdraw"
)

const textMainMenu = `Overview of HobbieCode

HobbieCode designs and offers algorithmic trading bots primarily for stock and cryptocurrency markets.
These bots are based on automated strategies developed by their team and are available via subscription.

Key features include:

- Automated Execution: Bots execute trades based on pre-defined strategies without manual intervention.
- Backtesting: Strategies are tested using historical data via MetaTrader's backtesting module to ensure reliability.
- Cloud-Based Operation: Bots run on cloud servers, eliminating the need for users to keep their computers running.


How the Bots Function

- Bots are built on customized trading strategies tailored to different market conditions.
I emphasize on strategies that align with a trader's risk tolerance and style.
- Strategies are coded into the bots using languages like MQL (MetaQuotes Language) for MetaTrader platforms


Technical Infrastructure

- Platform Integration: Bots operate on platforms like,
which connects to brokerage accounts for trade execution and decentralized wallets
- Sensors & Data Analysis: While not detailed in the search results,
typical trading bots use real-time market data (e.g., price feeds, volume indicators) as 'sensors' to make decisions.
- Risk Management: Includes stop-loss orders, position sizing, and leverage control to mitigate losses.


Deployment and Monitoring

-  Cloud Deployment: Bots are hosted on cloud servers for 24/7 operation and minimal latency.
- User Control: Subscribers can monitor performance and adjust parameters via dashboards or APIs,
though specifics are not elaborated in the search results.


3. Educational Integration

HobbieCode emphasizes education alongside bot subscriptions:
- Courses and eBooks: They offer training on designing strategies, backtesting, and deploying bots
(e.g., a free eBook on algorithmic trading tips)
- Customization Guidance: Users learn to tweak bot parameters to align with their trading goals .`

const textSubscriptionMenu = "After selecting the package and payment method, you will receive an invoice. 🧾\n" +
	"Please carefully copy the payment address and the amount into a wallet or exchange!"

const textProceedPayment = "Please click the 'Proceed to payment' button below to complete payment.\n" +
	"Once we receive payment you will be notified."

const textPaymentFinal = "⏳ Your invoice is being prepared.\n" +
	"You will receive the payment address and the exact amount in this chat.\n" +
	"Once we receive payment you will be notified."

const textBalanceMenu = "Subscription Days Left: {days} ⏱\n" +
	"Your referral balance: {refbalance} 💼\n" +
	"Bitcoin 💵 {btc_balance} BTC\n" +
	"Ethereum 💵 {eth_balance} ETH\n" +
	"Usdt | TRC 20 💵 {usdt_balance} USDT"

const textReferralsMenu = "💼 Your referral balance is:\n\n" +
	"💵 {refbalance}\n" +
	"All users: {all_users}\n" +
	"- Active users: {active_users}"

const textWithdrawMenu = "💰 Your referral balance is:\n" +
	"Bitcoin 💵 {btc_balance} BTC\n" +
	"Ethereum 💵 {eth_balance} ETH\n" +
	"Usdt | TRC 20 💵 {usdt_balance} USDT"

const (
	btnMainMenu = "⬅️ Main Menu"
	btnBack     = "⬅️ Back"
)

// DefaultScreens builds the static screen catalog. The language menu is
// generated from the whitelist with two languages per row, the way the
// main keyboard lays out every other menu one button per row.
func DefaultScreens(languages config.Languages, supportURL string) []Screen {
	return []Screen{
		{
			ID:   MainMenu,
			Body: textMainMenu,
			Rows: [][]Button{
				{{Label: "All Signals", Target: Signals}},
				{{Label: "Subscription", Target: Subscription}},
				{{Label: "My Balance", Target: Balance}},
				{{Label: "My Referrals", Target: Referrals}},
				{{Label: "🌐 Language", Target: LanguageMenu}},
				{{Label: "Support", URL: supportURL}},
			},
		},
		{
			ID:   LanguageMenu,
			Body: "Please select your language:",
			Rows: languageRows(languages),
		},
		{
			ID:   Signals,
			Body: "Please choose the subscription you want to view.",
			Rows: [][]Button{
				{{Label: "All Signals", Target: "signals_all"}},
				{{Label: "Accuracy above 85%", Target: "signals_85"}},
				{{Label: "Accuracy above 90%", Target: "signals_90"}},
				{{Label: btnMainMenu, Target: MainMenu}},
			},
		},
		{
			ID:   SignalsAck,
			Body: "Successfully updated desired Subscription.",
			Rows: [][]Button{
				{{Label: btnMainMenu, Target: MainMenu}},
			},
		},
		{
			ID:   Subscription,
			Body: textSubscriptionMenu,
			Rows: [][]Button{
				{{Label: "0.025000000 BTC - 1 month", Target: "plan_1m"}},
				{{Label: "0.050000000 BTC - 3 months", Target: "plan_3m"}},
				{{Label: "0.100000000 BTC - 12 months", Target: "plan_12m"}},
				{{Label: btnMainMenu, Target: MainMenu}},
			},
		},
		{
			ID:   Currency,
			Body: "Please choose currency:",
			Rows: [][]Button{
				{{Label: "Pay With BTC", Target: "pay_btc"}},
				{{Label: "Pay With ETH", Target: "pay_eth"}},
				{{Label: "Pay With USDT", Target: "pay_usdt"}},
				{{Label: btnBack, Target: Subscription}},
			},
		},
		{
			ID:   Proceed,
			Body: textProceedPayment,
			Rows: [][]Button{
				{{Label: "Proceed to Payment", Target: "proceed_pay"}},
				{{Label: btnMainMenu, Target: MainMenu}},
			},
		},
		{
			ID:   PaymentFinal,
			Body: textPaymentFinal,
			Rows: [][]Button{
				{{Label: btnMainMenu, Target: MainMenu}},
			},
		},
		{
			ID:   Balance,
			Body: textBalanceMenu,
			Rows: [][]Button{
				{{Label: "Subscription", Target: Subscription}},
				{{Label: btnMainMenu, Target: MainMenu}},
			},
		},
		{
			ID:   Referrals,
			Body: textReferralsMenu,
			Rows: [][]Button{
				{{Label: "Referral Link", Target: ReferralLink}},
				{{Label: "Withdraw", Target: Withdraw}},
				{{Label: btnMainMenu, Target: MainMenu}},
			},
		},
		{
			ID:   ReferralLink,
			Body: "Here is your personal referral link:",
			Rows: [][]Button{
				{{Label: btnBack, Target: Referrals}},
			},
		},
		{
			ID:   Withdraw,
			Body: textWithdrawMenu,
			Rows: [][]Button{
				{{Label: "Bitcoin", Target: "alert_btc"}},
				{{Label: "Ethereum", Target: "alert_eth"}},
				{{Label: "Usdt | TRC20", Target: "alert_usdt"}},
				{{Label: btnBack, Target: Referrals}},
			},
		},
	}
}

// DefaultRoutes maps the targets that are not screen ids themselves:
// tier picks confirm on one acknowledgement, plan picks move to the
// currency choice, coin picks move to the payment prompt.
func DefaultRoutes() map[string]string {
	return map[string]string{
		"signals_all": SignalsAck,
		"signals_85":  SignalsAck,
		"signals_90":  SignalsAck,
		"plan_1m":     Currency,
		"plan_3m":     Currency,
		"plan_12m":    Currency,
		"pay_btc":     Proceed,
		"pay_eth":     Proceed,
		"pay_usdt":    Proceed,
		"proceed_pay": PaymentFinal,
	}
}

func languageRows(languages config.Languages) [][]Button {
	var rows [][]Button
	var row []Button
	for _, l := range languages {
		row = append(row, Button{
			Label:  l.Emoji + " " + l.Name,
			Target: ActionSetLangPrefix + l.Code,
		})
		if len(row) == 2 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	rows = append(rows, []Button{{Label: btnBack, Target: MainMenu}})
	return rows
}
