// Package graph exposes task and account operations as a GraphQL endpoint.
package graph

import (
	graphql "github.com/graph-gophers/graphql-go"
)

const schemaSDL = `
schema {
	query: Query
	mutation: Mutation
}

type User {
	id: ID!
	username: String!
}

type File {
	id: ID!
	url: String!
	name: String
	mime: String
	size: Int
}

type Task {
	id: ID!
	title: String!
	description: String
	status: String
	due_date: String
	created_at: String
	files: [File!]!
}

type Query {
	me: User
	tasks(status: String): [Task!]!
	task(id: ID!): Task
}

type Mutation {
	register(username: String!, password: String!): User
	login(username: String!, password: String!): User
	logout: Boolean!

	createTask(title: String!, description: String, status: String, due_date: String): Task
	updateTask(id: ID!, title: String, description: String, status: String, due_date: String): Task
	deleteTask(id: ID!): Boolean!
	deleteFile(id: ID!): Boolean!
}
`

const maxQueryDepth = 8

// NewSchema parses the schema against r. It panics if r does not implement it.
func NewSchema(r *Resolver) *graphql.Schema {
	return graphql.MustParseSchema(schemaSDL, r, graphql.MaxDepth(maxQueryDepth))
}
