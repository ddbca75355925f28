package definitions

import "github.com/yankeeinlondon/schematic/define"

// EmqxBasic returns the EMQX Broker REST API definition using HTTP Basic
// Authentication. The API key acts as the username and the secret as the
// password; both are created in the EMQX Dashboard under System > API Key.
//
// Both EMQX variants set ModulePath "emqx" so their generated clients share
// one module, with distinct request suffixes keeping wrapper names apart.
func EmqxBasic() *define.RestAPI {
	return &define.RestAPI{
		Name:          "EmqxBasic",
		Description:   "EMQX Broker REST API with Basic Authentication (API Key + Secret)",
		BaseURL:       "http://localhost:18083/api/v5",
		DocsURL:       "https://docs.emqx.com/en/emqx/latest/admin/api.html",
		Auth:          define.Basic{},
		EnvUsername:   "EMQX_API_KEY",
		EnvPassword:   "EMQX_API_SECRET",
		Endpoints:     emqxCommonEndpoints(),
		ModulePath:    "emqx",
		RequestSuffix: "BasicRequest",
	}
}

// EmqxBearer returns the EMQX Broker REST API definition using JWT bearer
// tokens obtained from the /login endpoint. It carries the Login and Logout
// endpoints on top of everything EmqxBasic has.
func EmqxBearer() *define.RestAPI {
	endpoints := []define.Endpoint{
		{
			ID:          "Login",
			Method:      define.Post,
			Path:        "/login",
			Description: "Authenticate with username/password and receive a JWT token",
			Request:     define.JSONRequest{Schema: define.NewSchema("LoginBody")},
			Response:    define.JSONResponse{Schema: define.NewSchema("LoginResponse")},
		},
		{
			ID:          "Logout",
			Method:      define.Post,
			Path:        "/logout",
			Description: "Invalidate the current bearer token",
			Response:    define.EmptyResponse{},
		},
	}
	endpoints = append(endpoints, emqxCommonEndpoints()...)

	return &define.RestAPI{
		Name:          "EmqxBearer",
		Description:   "EMQX Broker REST API with Bearer Token authentication (JWT)",
		BaseURL:       "http://localhost:18083/api/v5",
		DocsURL:       "https://docs.emqx.com/en/emqx/latest/admin/api.html",
		Auth:          define.BearerToken{},
		EnvAuth:       []string{"EMQX_TOKEN"},
		Endpoints:     endpoints,
		ModulePath:    "emqx",
		RequestSuffix: "BearerRequest",
	}
}

// emqxCommonEndpoints builds the endpoints shared by both auth variants.
func emqxCommonEndpoints() []define.Endpoint {
	return []define.Endpoint{
		// Nodes and cluster
		{
			ID:          "ListNodes",
			Method:      define.Get,
			Path:        "/nodes",
			Description: "List all nodes in the EMQX cluster",
			Response:    define.JSONResponse{Schema: define.NewSchema("ListNodesResponse")},
		},
		{
			ID:          "GetNode",
			Method:      define.Get,
			Path:        "/nodes/{node}",
			Description: "Get detailed information about a specific node",
			Response:    define.JSONResponse{Schema: define.NewSchema("NodeInfo")},
		},
		{
			ID:          "GetCluster",
			Method:      define.Get,
			Path:        "/cluster",
			Description: "Get cluster status and node membership",
			Response:    define.JSONResponse{Schema: define.NewSchema("ClusterStatus")},
		},

		// Clients
		{
			ID:          "ListClients",
			Method:      define.Get,
			Path:        "/clients",
			Description: "List connected MQTT clients with pagination",
			Response:    define.JSONResponse{Schema: define.NewSchema("ListClientsResponse")},
		},
		{
			ID:          "GetClient",
			Method:      define.Get,
			Path:        "/clients/{clientid}",
			Description: "Get detailed information about a specific client",
			Response:    define.JSONResponse{Schema: define.NewSchema("ClientInfo")},
		},
		{
			ID:          "DisconnectClient",
			Method:      define.Delete,
			Path:        "/clients/{clientid}",
			Description: "Forcefully disconnect a client from the broker",
			Response:    define.EmptyResponse{},
		},
		{
			ID:          "SubscribeClient",
			Method:      define.Post,
			Path:        "/clients/{clientid}/subscribe",
			Description: "Create a subscription for a connected client",
			Request:     define.JSONRequest{Schema: define.NewSchema("SubscribeBody")},
			Response:    define.EmptyResponse{},
		},
		{
			ID:          "UnsubscribeClient",
			Method:      define.Post,
			Path:        "/clients/{clientid}/unsubscribe",
			Description: "Remove a subscription from a connected client",
			Request:     define.JSONRequest{Schema: define.NewSchema("SubscribeBody")},
			Response:    define.EmptyResponse{},
		},
		{
			ID:          "ListSubscriptions",
			Method:      define.Get,
			Path:        "/subscriptions",
			Description: "List all subscriptions across the cluster",
			Response:    define.JSONResponse{Schema: define.NewSchema("ListSubscriptionsResponse")},
		},

		// Publishing
		{
			ID:          "Publish",
			Method:      define.Post,
			Path:        "/publish",
			Description: "Publish an MQTT message to a topic",
			Request:     define.JSONRequest{Schema: define.NewSchema("PublishBody")},
			Response:    define.EmptyResponse{},
		},
		{
			ID:          "PublishBulk",
			Method:      define.Post,
			Path:        "/publish/bulk",
			Description: "Publish multiple MQTT messages in a single request",
			Request:     define.JSONRequest{Schema: define.NewSchema("PublishBatchBody")},
			Response:    define.EmptyResponse{},
		},

		// Rules engine
		{
			ID:          "ListRules",
			Method:      define.Get,
			Path:        "/rules",
			Description: "List all rules in the rules engine",
			Response:    define.JSONResponse{Schema: define.NewSchema("ListRulesResponse")},
		},
		{
			ID:          "CreateRule",
			Method:      define.Post,
			Path:        "/rules",
			Description: "Create a new rule in the rules engine",
			Request:     define.JSONRequest{Schema: define.NewSchema("CreateRuleBody")},
			Response:    define.JSONResponse{Schema: define.NewSchema("RuleInfo")},
		},
		{
			ID:          "GetRule",
			Method:      define.Get,
			Path:        "/rules/{id}",
			Description: "Get details of a specific rule",
			Response:    define.JSONResponse{Schema: define.NewSchema("RuleInfo")},
		},
		{
			ID:          "UpdateRule",
			Method:      define.Put,
			Path:        "/rules/{id}",
			Description: "Update an existing rule",
			Request:     define.JSONRequest{Schema: define.NewSchema("CreateRuleBody")},
			Response:    define.JSONResponse{Schema: define.NewSchema("RuleInfo")},
		},
		{
			ID:          "DeleteRule",
			Method:      define.Delete,
			Path:        "/rules/{id}",
			Description: "Delete a rule from the rules engine",
			Response:    define.EmptyResponse{},
		},

		// Metrics and stats
		{
			ID:          "ListMetrics",
			Method:      define.Get,
			Path:        "/metrics",
			Description: "Get broker metrics for all nodes",
			Response:    define.JSONResponse{Schema: define.NewSchema("ListMetricsResponse")},
		},
		{
			ID:          "ListStats",
			Method:      define.Get,
			Path:        "/stats",
			Description: "Get broker statistics for all nodes",
			Response:    define.JSONResponse{Schema: define.NewSchema("ListStatsResponse")},
		},
		{
			ID:          "GetPrometheus",
			Method:      define.Get,
			Path:        "/prometheus/stats",
			Description: "Get metrics in Prometheus format",
			Response:    define.TextResponse{},
		},

		// Retained messages
		{
			ID:          "ListRetained",
			Method:      define.Get,
			Path:        "/retainer/messages",
			Description: "List retained messages with pagination",
			Response:    define.JSONResponse{Schema: define.NewSchema("ListRetainedResponse")},
		},
		{
			ID:          "GetRetained",
			Method:      define.Get,
			Path:        "/retainer/messages/{topic}",
			Description: "Get a specific retained message by topic",
			Response:    define.JSONResponse{Schema: define.NewSchema("RetainedMessage")},
		},
		{
			ID:          "DeleteRetained",
			Method:      define.Delete,
			Path:        "/retainer/messages/{topic}",
			Description: "Delete a retained message",
			Response:    define.EmptyResponse{},
		},

		// Alarms and bans
		{
			ID:          "ListAlarms",
			Method:      define.Get,
			Path:        "/alarms",
			Description: "List active alarms",
			Response:    define.JSONResponse{Schema: define.NewSchema("ListAlarmsResponse")},
		},
		{
			ID:          "ListBanned",
			Method:      define.Get,
			Path:        "/banned",
			Description: "List all banned clients, usernames, and hosts",
			Response:    define.JSONResponse{Schema: define.NewSchema("ListBannedResponse")},
		},
		{
			ID:          "CreateBan",
			Method:      define.Post,
			Path:        "/banned",
			Description: "Ban a client, username, or host",
			Request:     define.JSONRequest{Schema: define.NewSchema("CreateBanBody")},
			Response:    define.JSONResponse{Schema: define.NewSchema("BanInfo")},
		},
		{
			ID:          "DeleteBan",
			Method:      define.Delete,
			Path:        "/banned/{ban_type}/{who}",
			Description: "Remove a ban by type (clientid, username, peerhost) and value",
			Response:    define.EmptyResponse{},
		},
	}
}
