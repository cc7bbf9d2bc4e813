package store

// identity_key holds catalog.Key so every backend dedupes on the same
// normalized (name, provider, deadline). Absent provider and deadline are
// stored as '' in SQLite.
const sqliteSchema = `
CREATE TABLE IF NOT EXISTS scholarships (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    description TEXT,
    provider TEXT NOT NULL DEFAULT '',
    eligibility TEXT,
    amount TEXT,
    currency TEXT DEFAULT 'USD',
    deadline TEXT NOT NULL DEFAULT '',
    application_link TEXT,
    country TEXT NOT NULL DEFAULT 'International',
    degree_level TEXT NOT NULL DEFAULT 'Any',
    subject TEXT NOT NULL DEFAULT 'Any',
    is_featured BOOLEAN NOT NULL DEFAULT FALSE,
    source_name TEXT,
    source_url TEXT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    identity_key TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS scraper_logs (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    source_name TEXT NOT NULL,
    items_scraped INTEGER NOT NULL DEFAULT 0,
    items_inserted INTEGER NOT NULL DEFAULT 0,
    items_duplicates INTEGER NOT NULL DEFAULT 0,
    errors INTEGER NOT NULL DEFAULT 0,
    started_at TIMESTAMP NOT NULL,
    completed_at TIMESTAMP NOT NULL,
    status TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_scholarships_country ON scholarships(country);
CREATE INDEX IF NOT EXISTS idx_scholarships_degree_level ON scholarships(degree_level);
CREATE INDEX IF NOT EXISTS idx_scholarships_deadline ON scholarships(deadline);
`

const postgresSchema = `
CREATE TABLE IF NOT EXISTS scholarships (
    id SERIAL PRIMARY KEY,
    name VARCHAR(500) NOT NULL,
    description TEXT,
    provider VARCHAR(255),
    eligibility TEXT,
    amount VARCHAR(255),
    currency VARCHAR(10) DEFAULT 'USD',
    deadline DATE,
    application_link TEXT,
    country VARCHAR(100) NOT NULL DEFAULT 'International',
    degree_level VARCHAR(100) NOT NULL DEFAULT 'Any',
    subject VARCHAR(200) NOT NULL DEFAULT 'Any',
    is_featured BOOLEAN NOT NULL DEFAULT FALSE,
    source_name VARCHAR(100),
    source_url TEXT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    identity_key TEXT NOT NULL,
    CONSTRAINT scholarships_identity UNIQUE (identity_key)
);

CREATE TABLE IF NOT EXISTS scraper_logs (
    id SERIAL PRIMARY KEY,
    source_name VARCHAR(100) NOT NULL,
    items_scraped INTEGER NOT NULL DEFAULT 0,
    items_inserted INTEGER NOT NULL DEFAULT 0,
    items_duplicates INTEGER NOT NULL DEFAULT 0,
    errors INTEGER NOT NULL DEFAULT 0,
    started_at TIMESTAMP NOT NULL,
    completed_at TIMESTAMP NOT NULL,
    status VARCHAR(20) NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_scholarships_country ON scholarships(country);
CREATE INDEX IF NOT EXISTS idx_scholarships_degree_level ON scholarships(degree_level);
CREATE INDEX IF NOT EXISTS idx_scholarships_deadline ON scholarships(deadline);
`
