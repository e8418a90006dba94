// Package router implements an HTTP request router: it compiles declared
// URI templates into matchers, composes nested route groups, dispatches
// incoming requests to handlers through a middleware chain, and resolves
// handler parameters from matched URI segments or from a type-keyed
// resolver registry.
//
// # Quick start
//
//	r := router.New()
//	r.GET("/users/{id}", func(id string) any {
//	    return map[string]string{"id": id}
//	})
//	http.ListenAndServe(":8080", r)
//
// # Groups
//
//	r.Group(router.GroupScope{Prefix: "/api", Middleware: []string{"auth"}}, func(r *router.Router) {
//	    r.Group(router.GroupScope{Prefix: "/v1"}, func(r *router.Router) {
//	        r.GET("/users", listUsers) // mounted at /api/v1/users
//	    })
//	})
//
// # Handlers
//
// A handler may be a string ("Controller@method"), a [controllerID, method]
// pair, or an inline Go function. A parameter of type *http.Request,
// http.ResponseWriter or *Context receives the request's own value; every
// other parameter takes the route's next matched segment, in declaration
// order, converted by the router's [ResolverRegistry] according to the
// parameter's declared type.
package router
