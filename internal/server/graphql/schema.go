// Package graphql defines the GraphQL schema and resolvers of the bookstore
// API: public reads and auth mutations plus the token-gated addBook.
package graphql

// SchemaDef is the schema served at /graphql.
const SchemaDef = `
	schema {
		query: Query
		mutation: Mutation
	}

	type Query {
		books: [Book!]!
		authors: [Author!]!
	}

	type Mutation {
		register(email: String!, password: String!): String!
		login(email: String!, password: String!): String!
		addBook(title: String!, isbn: String!, authorId: Int!, price: Float!, stock: Int!): Book!
	}

	type Author {
		id: Int!
		firstName: String!
		lastName: String!
	}

	type Book {
		id: Int!
		title: String!
		isbn: String!
		authorId: Int!
		author: Author
		price: Float!
		stock: Int!
	}
`
