package sqlite

const schema = `
CREATE TABLE IF NOT EXISTS entities (
    name TEXT PRIMARY KEY,
    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS frames (
    id TEXT PRIMARY KEY,
    entity TEXT NOT NULL REFERENCES entities(name),
    category TEXT NOT NULL,
    properties TEXT NOT NULL DEFAULT '{}',
    relationships TEXT NOT NULL DEFAULT '{}',
    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_frames_entity ON frames(entity);
`
