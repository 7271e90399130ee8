package graphql

// Schema is the query/mutation contract exposed to clients. Book.author is an
// Author reference resolved on demand, not a denormalized name.
const Schema = `
schema {
    query: Query
    mutation: Mutation
}

type Query {
    bookCount: Int!
    authorCount: Int!
    allBooks(author: String, genre: String): [Book!]!
    allAuthors: [Author!]!
    me: User
}

type Mutation {
    addBook(
        title: String!
        published: Int!
        author: String!
        genres: [String!]!
    ): Book!
    editAuthor(name: String!, year: Int!): Author!
    createUser(username: String!, favouriteGenre: String): User!
    login(username: String!, password: String!): Token!
}

type Book {
    id: ID!
    title: String!
    published: Int!
    author: Author!
    genres: [String!]!
}

type Author {
    id: ID!
    name: String!
    born: Int
    bookCount: Int!
}

type User {
    id: ID!
    username: String!
    favouriteGenre: String
}

type Token {
    value: String!
}
`
