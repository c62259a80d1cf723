// Package domain contains the core tb3 entities shared by the ledger, the
// HTTP surface, the client and the dashboard: edges and their reputation,
// tasks with their stage logs, governance proposals and reputation
// propagations. Types are free of infrastructure concerns; numeric ledger
// values travel as JSON strings the way the chain's REST gateway renders them.
package domain
